package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultSystemctlTimeout = 10 * time.Second
	defaultTopLimit         = 20
	envLogFile              = "PDM_LOG_FILE"
	envSystemctlTimeout     = "PDM_SYSTEMCTL_TIMEOUT"
	envTopLimit             = "PDM_TOP_LIMIT"
)

// Config aggregates the tool-wide tunables.
type Config struct {
	// AuditLogPath, when non-empty, receives a structured record of every
	// mutating action. Empty disables the audit file.
	AuditLogPath string
	// SystemctlTimeout bounds each individual systemctl invocation.
	SystemctlTimeout time.Duration
	// TopLimit is the default row count for the top command.
	TopLimit int
	// ExportDir is where snapshot exports land when no output path is given.
	ExportDir string
}

// Load builds a Config from an optional TOML file path plus environment
// overrides, on top of defaults.
func Load(path string) (Config, error) {
	cfg := Config{
		SystemctlTimeout: defaultSystemctlTimeout,
		TopLimit:         defaultTopLimit,
		ExportDir:        ".",
	}

	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

type fileConfig struct {
	AuditLogPath     string `toml:"audit_log"`
	SystemctlTimeout string `toml:"systemctl_timeout"`
	TopLimit         int    `toml:"top_limit"`
	ExportDir        string `toml:"export_dir"`
}

func applyFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return err
	}

	if meta.IsDefined("audit_log") {
		cfg.AuditLogPath = raw.AuditLogPath
	}
	if meta.IsDefined("systemctl_timeout") {
		dur, err := time.ParseDuration(raw.SystemctlTimeout)
		if err != nil {
			return fmt.Errorf("parse systemctl_timeout: %w", err)
		}
		if dur <= 0 {
			return errors.New("systemctl_timeout must be > 0")
		}
		cfg.SystemctlTimeout = dur
	}
	if meta.IsDefined("top_limit") {
		if raw.TopLimit <= 0 {
			return errors.New("top_limit must be > 0")
		}
		cfg.TopLimit = raw.TopLimit
	}
	if meta.IsDefined("export_dir") {
		cfg.ExportDir = raw.ExportDir
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envLogFile); v != "" {
		cfg.AuditLogPath = v
	}

	if v := os.Getenv(envSystemctlTimeout); v != "" {
		if dur, err := time.ParseDuration(v); err == nil && dur > 0 {
			cfg.SystemctlTimeout = dur
		} else if err != nil {
			log.Printf("invalid %s value %q: %v", envSystemctlTimeout, v, err)
		}
	}

	if v := os.Getenv(envTopLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TopLimit = n
		} else if err != nil {
			log.Printf("invalid %s value %q: %v", envTopLimit, v, err)
		}
	}
}
