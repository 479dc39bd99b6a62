package config

import (
	"fmt"

	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/registry"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = domain.ConfigFormatVersion
	}
	if cfg.ConfigFormatVersion != domain.ConfigFormatVersion {
		return fmt.Errorf("unsupported config_format_version %s (this build understands %s)",
			cfg.ConfigFormatVersion, domain.ConfigFormatVersion)
	}
	// Building the registry exercises every custom utility entry and the
	// disabled list against the same rules the CLI runs with.
	if _, err := registry.New(cfg); err != nil {
		return err
	}
	return nil
}
