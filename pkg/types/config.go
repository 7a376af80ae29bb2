// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// OutputFormat selects how the convert command prints its result.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --format value. An empty string selects the table.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case "":
		return OutputTable, nil
	case OutputTable, OutputJSON, OutputYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q: use table, json or yaml", s)
}

// ServeConfig holds settings for the HTTP server.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// SiteURL is the canonical public URL used in SEO metadata and the sitemap.
	SiteURL string `json:"site_url" yaml:"site_url" mapstructure:"site_url"`

	// AllowAllOrigins disables the localhost-only CORS policy (dev mode).
	AllowAllOrigins bool `json:"allow_all_origins" yaml:"allow_all_origins" mapstructure:"allow_all_origins"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// OutputConfig holds defaults for the convert command.
type OutputConfig struct {
	// Format is the default output format: table, json or yaml.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Prefix prints literals with their base prefix (0b, 0o, 0x).
	Prefix bool `json:"prefix" yaml:"prefix" mapstructure:"prefix"`
}

// Config groups every configurable setting.
type Config struct {
	Serve  ServeConfig  `json:"serve" yaml:"serve" mapstructure:"serve"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
}

// DefaultConfig returns the settings used when no config file or flag
// overrides them.
func DefaultConfig() Config {
	return Config{
		Serve: ServeConfig{
			Addr:            ":8080",
			SiteURL:         "https://base-converter.vercel.app",
			ShutdownTimeout: 10 * time.Second,
		},
		Output: OutputConfig{
			Format: OutputTable,
		},
	}
}
