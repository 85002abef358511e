package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"

	"coach-backend/internal/shared/telemetry"
)

// loadEnvFiles loads the given env files if they exist.
// Variables already present in the process environment win over file values.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		err := godotenv.Load(path)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		telemetry.Error("config.env_file_invalid", map[string]any{"path": path, "error": err})
	}
}
