// Package config resolves runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/panyam/queuemodels/logging"
)

const (
	EnvLogLevel  = "QUEUEMODELS_LOG_LEVEL"
	EnvPrecision = "QUEUEMODELS_PRECISION"
	EnvNoColor   = "QUEUEMODELS_NO_COLOR"
	EnvFile      = "QUEUEMODELS_ENV_FILE"

	DefaultEnvFile   = ".env"
	DefaultPrecision = 4
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	LogLevel  logging.LogLevel
	Precision int
	NoColor   bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:  logging.LogLevelInfo,
		Precision: DefaultPrecision,
	}
}

// LoadEnvFile loads key=value pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are ignored; malformed ones are an error.
func LoadEnvFile(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading env file %s: %w", f, err)
		}
	}
	return nil
}

// DefaultEnvFilePath is the env file named by QUEUEMODELS_ENV_FILE or ".env".
func DefaultEnvFilePath() string {
	if f := os.Getenv(EnvFile); f != "" {
		return f
	}
	return DefaultEnvFile
}

// FromEnv builds a Config from environment variables on top of Default.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		level, err := logging.ParseLogLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup(EnvPrecision); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 0 {
			return cfg, fmt.Errorf("%s: invalid precision %q", EnvPrecision, v)
		}
		cfg.Precision = p
	}

	if v, ok := lookup(EnvNoColor); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvNoColor, err)
		}
		cfg.NoColor = b
	}
	return cfg, nil
}

// Apply installs a global logger writing to w with the configured level,
// with colored level tags unless NoColor is set. It returns the logger it
// replaced.
func (c Config) Apply(w io.Writer) logging.Logger {
	return logging.SetLogger(logging.NewLogger(w, c.LogLevel).SetColored(!c.NoColor))
}
