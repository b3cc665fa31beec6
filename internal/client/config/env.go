package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvAPIBaseURL overrides the API base URL.
const EnvAPIBaseURL = "NOTES_API_BASE_URL"

// parseEnv loads a .env file from the working directory, when there is one,
// and then applies the environment. Variables already set in the process
// environment win over the .env file.
func parseEnv(cfg *Config) error {
	return loadEnv(cfg, ".env")
}

func loadEnv(cfg *Config, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	return nil
}
