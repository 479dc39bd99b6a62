package domain

// Host is a point-in-time snapshot of the machine state that path
// resolution and install hints depend on. Threading it explicitly keeps
// environment lookups out of the services and lets tests describe
// arbitrary hosts.
type Host struct {
	OS      string // a runtime.GOOS value
	Env     map[string]string
	HomeDir string
}

// Getenv looks up an environment variable from the snapshot. Missing keys
// return the empty string, matching os.Getenv.
func (h Host) Getenv(key string) string {
	return h.Env[key]
}
