package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the client configuration, read from the environment.
type Config struct {
	APIBaseURL       string
	AssetBaseURL     string
	NominatimBaseURL string
	AcceptLanguage   string
	StateFile        string
	HTTPTimeout      time.Duration
	LogLevel         string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL:       getenv("API_BASE_URL", "http://me4war.runasp.net/api"),
		AssetBaseURL:     getenv("ASSET_BASE_URL", "http://me4war.runasp.net"),
		NominatimBaseURL: getenv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		AcceptLanguage:   getenv("ACCEPT_LANGUAGE", "ar"),
		StateFile:        getenv("STATE_FILE", defaultStateFile()),
		HTTPTimeout:      getDuration("HTTP_TIMEOUT", 10*time.Second),
		LogLevel:         getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func defaultStateFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "meshwar-state.json"
	}
	return filepath.Join(dir, "meshwar", "state.json")
}
