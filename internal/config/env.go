package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvDB       = "KANAFLASH_DB"
	EnvLogLevel = "KANAFLASH_LOG_LEVEL"
)

// EnvConfig holds overrides read from the environment. Nil means unset.
type EnvConfig struct {
	DB       *string
	LogLevel *string
}

// LoadEnv loads dotenv files (missing ones are skipped) and reads the
// KANAFLASH_* variables. Variables already set in the process win over files.
func LoadEnv(paths ...string) (EnvConfig, error) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return EnvConfig{}, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return EnvConfig{
		DB:       lookupEnv(EnvDB),
		LogLevel: lookupEnv(EnvLogLevel),
	}, nil
}

func lookupEnv(key string) *string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	return &v
}
