package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const defaultDotEnvPath = ".env"

// loadDotEnv exports the variables of the given .env file into the process
// environment. Variables already present in the environment are kept.
// A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	return nil
}
