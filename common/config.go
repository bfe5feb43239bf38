package common

import (
	"os"
)

const (
	DefaultPort         = "8080"
	DefaultDatabasePath = "housing.db"
	DefaultDataDir      = "data"
)

// Config holds process-level settings read from the environment
type Config struct {
	Port         string
	DatabasePath string
	DatasetsFile string // Optional YAML catalogue, built-in datasets when empty
	DataDir      string // Base directory for relative dataset paths
	GinMode      string
}

// LoadConfig reads settings from environment variables, falling back to defaults
func LoadConfig() Config {
	return Config{
		Port:         getEnv("PORT", DefaultPort),
		DatabasePath: getEnv("DATABASE_PATH", DefaultDatabasePath),
		DatasetsFile: os.Getenv("DATASETS_FILE"),
		DataDir:      getEnv("DATA_DIR", DefaultDataDir),
		GinMode:      os.Getenv("GIN_MODE"),
	}
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
