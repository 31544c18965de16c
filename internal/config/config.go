// Package config provides configuration management for the cutroom
// agent. Configuration is loaded from environment variables with
// sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// Default values
	DefaultPort     = 8790
	DefaultLogLevel = "info"
	DefaultDataDir  = ".cutroom"

	// Environment variable names
	EnvPort             = "CUTROOM_PORT"
	EnvLogLevel         = "CUTROOM_LOG_LEVEL"
	EnvDataDir          = "CUTROOM_DATA_DIR"
	EnvScaffoldFile     = "CUTROOM_SCAFFOLD_FILE"
	EnvLenientDurations = "CUTROOM_LENIENT_DURATIONS"

	// Database filename
	DBFilename = "cutroom.db"
)

// Config defines the application configuration interface
type Config interface {
	Port() int
	LogLevel() string
	DataDir() string
	DBPath() string
	ScaffoldFile() string
	LenientDurations() bool
}

// EnvConfig reads configuration from environment variables
type EnvConfig struct {
	port             int
	logLevel         string
	dataDir          string
	scaffoldFile     string
	lenientDurations bool
}

// New creates a new EnvConfig with defaults and environment variable overrides
func New() (*EnvConfig, error) {
	cfg := &EnvConfig{
		port:     DefaultPort,
		logLevel: DefaultLogLevel,
		dataDir:  defaultDataDir(),
	}

	if p := os.Getenv(EnvPort); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid %s: port must be between 1 and 65535", EnvPort)
		}
		cfg.port = port
	}

	if ll := os.Getenv(EnvLogLevel); ll != "" {
		cfg.logLevel = ll
	}

	if dd := os.Getenv(EnvDataDir); dd != "" {
		cfg.dataDir = dd
	}

	cfg.scaffoldFile = os.Getenv(EnvScaffoldFile)

	if ld := os.Getenv(EnvLenientDurations); ld != "" {
		lenient, err := strconv.ParseBool(ld)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLenientDurations, err)
		}
		cfg.lenientDurations = lenient
	}

	return cfg, nil
}

// Port returns the HTTP server port
func (c *EnvConfig) Port() int {
	return c.port
}

// LogLevel returns the log level (debug, info, warn, error)
func (c *EnvConfig) LogLevel() string {
	return c.logLevel
}

// DataDir returns the data directory path
func (c *EnvConfig) DataDir() string {
	return c.dataDir
}

// DBPath returns the full path to the SQLite database file
func (c *EnvConfig) DBPath() string {
	return filepath.Join(c.dataDir, DBFilename)
}

// ScaffoldFile returns the path of the optional TOML scaffold
// overrides file, or empty when the built-in defaults apply.
func (c *EnvConfig) ScaffoldFile() string {
	return c.scaffoldFile
}

// LenientDurations reports whether malformed cut durations parse as
// zero instead of being skipped.
func (c *EnvConfig) LenientDurations() bool {
	return c.lenientDurations
}

// defaultDataDir returns the default data directory path
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home is not available
		return DefaultDataDir
	}
	return filepath.Join(home, DefaultDataDir)
}

// Version information (set at build time via ldflags)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
