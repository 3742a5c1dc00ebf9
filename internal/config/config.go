package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	OutputDir string

	ManifestPath string

	DefaultLocation string
	YearMin         int
	YearMax         int

	ImagePathPrefix string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "catalog.db")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		ManifestPath: getEnv("SOURCES_MANIFEST", filepath.Join(cwd, "sources.json")),

		DefaultLocation: getEnv("DEFAULT_LOCATION", "Europe"),
		YearMin:         getEnvInt("YEAR_MIN", 1900),
		YearMax:         getEnvInt("YEAR_MAX", 2030),

		ImagePathPrefix: getEnv("IMAGE_PATH_PREFIX", "/machines/"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
