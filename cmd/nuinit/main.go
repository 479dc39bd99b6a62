package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/nuinit/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		// Help has already been printed for a bare invocation.
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// isVerbose is decided before cobra runs because the logger is part of
// the dependency graph the root command is built from.
func isVerbose() bool {
	for _, arg := range os.Args[1:] {
		if arg == "--verbose" {
			return true
		}
	}
	return strings.EqualFold(os.Getenv("NUINIT_DEBUG"), "1") || strings.EqualFold(os.Getenv("NUINIT_DEBUG"), "true")
}
