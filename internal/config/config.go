package config

import (
	stderrors "errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vytor/studybananas/internal/errors"
)

type Config struct {
	LogLevel  string
	LogColors bool
	PrefsPath string
	DataDir   string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		LogLevel:  envOr("LOG_LEVEL", "INFO"),
		LogColors: envBoolOr("LOG_COLORS", true),
		PrefsPath: envOr("PREFS_PATH", "preferences.yaml"),
		DataDir:   envOr("DATA_DIR", "data"),
	}
}

// Validate reports every invalid field at once, each as a VALIDATION_ERROR.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		errs = append(errs, errors.NewValidationError("LOG_LEVEL",
			fmt.Sprintf("%q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel)))
	}
	if strings.TrimSpace(c.PrefsPath) == "" {
		errs = append(errs, errors.NewValidationError("PREFS_PATH", "cannot be empty"))
	}
	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, errors.NewValidationError("DATA_DIR", "cannot be empty"))
	}
	return stderrors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
