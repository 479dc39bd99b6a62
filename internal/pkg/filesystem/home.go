package filesystem

import "os"

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// Exists reports whether a file or directory is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
