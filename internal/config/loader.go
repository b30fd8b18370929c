// internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/colebrumley/scripttools/internal/security"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is read when SCRIPTTOOLS_CONFIG is unset. It may be absent.
	DefaultPath = "/etc/scripttools/config.yaml"
	// PathEnv names the environment variable that selects the config file.
	PathEnv = "SCRIPTTOOLS_CONFIG"
)

// Load resolves the config file path from the environment and loads it.
// A missing file at DefaultPath is not an error; a missing file that was
// asked for explicitly is.
func Load() (*Global, error) {
	if path := os.Getenv(PathEnv); path != "" {
		return LoadGlobal(path)
	}
	cfg, err := LoadGlobal(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults()
	}
	return cfg, err
}

// Defaults returns the built-in configuration with environment overrides.
func Defaults() (*Global, error) {
	cfg := preset()
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	applyGlobalDefaults(&cfg)
	return &cfg, cfg.Validate()
}

// LoadGlobal loads the configuration from a YAML file, then applies
// environment overrides and defaults.
func LoadGlobal(path string) (*Global, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := security.ValidateFilePermissions(path); err != nil {
		return nil, fmt.Errorf("refusing config file: %w", err)
	}

	cfg := preset()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	applyGlobalDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings neither tool can run with.
func (g *Global) Validate() error {
	if g.CleanScript.MaxLineLength <= 0 {
		return fmt.Errorf("cleanscript.max_line_length must be positive, got %d", g.CleanScript.MaxLineLength)
	}
	if g.Router.InputBuffer <= 1 {
		return fmt.Errorf("ir.input_buffer must be greater than 1, got %d", g.Router.InputBuffer)
	}
	switch g.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", g.Logging.Format)
	}
	return nil
}

// preset holds the defaults whose zero value is meaningful, so they must be
// in place before the file and environment are read.
func preset() Global {
	return Global{Logging: LoggingConfig{Compress: true}}
}

func applyGlobalDefaults(cfg *Global) {
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.MaxSizeMB <= 0 {
		cfg.Logging.MaxSizeMB = 10
	}
	if cfg.Logging.MaxBackups <= 0 {
		cfg.Logging.MaxBackups = 3
	}
	if cfg.Logging.MaxAgeDays <= 0 {
		cfg.Logging.MaxAgeDays = 28
	}
	if cfg.CleanScript.MaxLineLength == 0 {
		cfg.CleanScript.MaxLineLength = 4096
	}
	if cfg.Router.InputBuffer == 0 {
		cfg.Router.InputBuffer = 4096
	}
	if cfg.Router.ConsoleDevice == "" {
		cfg.Router.ConsoleDevice = "/dev/console"
	}
	if cfg.Router.TTYDevice == "" {
		cfg.Router.TTYDevice = "/dev/tty"
	}
}
