package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads the given .env files into the process environment and returns
// a snapshot of the environment. Files that do not exist are skipped. Values
// already present in the environment are never overwritten by a file, so the
// first file naming a key wins. Files that cannot be read are reported in the
// returned error; the snapshot is still complete for everything else.
func LoadEnv(files ...string) (map[string]string, error) {
	var errs []error
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}

		if err := godotenv.Load(file); err != nil {
			errs = append(errs, fmt.Errorf("could not load %s: %w", file, err))
		}
	}

	values := make(map[string]string)
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if ok && key != "" {
			values[key] = value
		}
	}

	return values, errors.Join(errs...)
}

// EnvFile returns the .env file named by ENV_FILE, or ".env"
func EnvFile() string {
	if file := os.Getenv("ENV_FILE"); file != "" {
		return file
	}
	return ".env"
}
