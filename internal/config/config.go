// Package config loads and validates planner configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the planner input, read from a YAML file.
type Config struct {
	// CidrBlock is the top-level address block; its prefix must be /16.
	CidrBlock string `yaml:"cidr_block"`

	// Environment prefixes derived resource names ("dev", "prod").
	Environment string `yaml:"environment"`

	// SharePrincipals are target account identifiers that receive
	// subnet visibility. Empty means no sharing plan is produced.
	SharePrincipals []string `yaml:"share_principals"`

	// NatBootstrapPath points at the guest-OS bootstrap script for the
	// NAT instance, resolved relative to the config file. The content
	// is attached verbatim and never interpreted.
	NatBootstrapPath string `yaml:"nat_bootstrap_path"`

	// NatBootstrap is the loaded bootstrap payload.
	NatBootstrap string `yaml:"-"`
}

// Load reads, parses, and validates the config file, and loads the
// bootstrap payload when one is configured.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if cfg.NatBootstrapPath != "" {
		bootstrapPath := cfg.NatBootstrapPath
		if !filepath.IsAbs(bootstrapPath) {
			bootstrapPath = filepath.Join(filepath.Dir(path), bootstrapPath)
		}
		payload, err := os.ReadFile(bootstrapPath)
		if err != nil {
			return nil, fmt.Errorf("reading nat bootstrap: %w", err)
		}
		cfg.NatBootstrap = string(payload)
	}

	return &cfg, nil
}

// Validate checks required fields. Block prefix validation belongs to
// the allocator; this only catches structurally missing input.
func (c *Config) Validate() error {
	if c.CidrBlock == "" {
		return errors.New("cidr_block is required")
	}
	if c.Environment == "" {
		return errors.New("environment is required")
	}
	return nil
}
