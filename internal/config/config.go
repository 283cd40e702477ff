// Package config handles dpswctl configuration loading using viper.
package config

import (
	"fmt"

	"firestige.xyz/dpsw/internal/log"
	"firestige.xyz/dpsw/pkg/mc"
)

// Config is the top-level dpswctl configuration.
type Config struct {
	Object ObjectConfig `mapstructure:"object"`
	Portal PortalConfig `mapstructure:"portal"`
	Log    log.Config   `mapstructure:"log"`
}

// ObjectConfig identifies the DPSW object commands are addressed to.
type ObjectConfig struct {
	// ID is the DPSW object id, as listed by the resource container.
	ID int32 `mapstructure:"id"`
}

// PortalConfig selects the MC portal backend and its submission flags.
type PortalConfig struct {
	// Type selects the backend: "echo" completes every command in place,
	// "replay" serves canned responses from Fixture.
	Type string `mapstructure:"type"`
	// Fixture is the YAML response script for the replay backend.
	Fixture string `mapstructure:"fixture"`
	// Priority submits commands on the high-priority queue.
	Priority bool `mapstructure:"priority"`
	// IntrDisable suppresses the completion interrupt.
	IntrDisable bool `mapstructure:"intr_disable"`
}

// Flags returns the command submission flags the portal configuration asks
// for.
func (p PortalConfig) Flags() mc.Flags {
	var flags mc.Flags
	if p.Priority {
		flags |= mc.FlagPriority
	}
	if p.IntrDisable {
		flags |= mc.FlagIntrDis
	}
	return flags
}

// Validate checks cross-field constraints that viper cannot express.
func (c *Config) Validate() error {
	switch c.Portal.Type {
	case "echo":
	case "replay":
		if c.Portal.Fixture == "" {
			return fmt.Errorf("portal type %q requires 'fixture'", c.Portal.Type)
		}
	default:
		return fmt.Errorf("unknown portal type %q (must be echo or replay)", c.Portal.Type)
	}
	return nil
}
