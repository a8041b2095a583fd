package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Verbosity values for the browser client. "quiet" tells the client to reveal
// nothing about why no location was collected; "status" lets it surface its
// pending/denied/error states.
const (
	VerbosityQuiet  = "quiet"
	VerbosityStatus = "status"
)

// Config carries all process-level settings, read once at startup.
type Config struct {
	Port            string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	DBTimezone      string
	GeoAPIBaseURL   string
	ClientVerbosity string
}

// Load reads configuration from a .env file (if present) and the environment,
// falling back to defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	cfg := Config{
		Port:            getEnv("PORT", "5000"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "password"),
		DBName:          getEnv("DB_NAME", "gps_tracker"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		DBTimezone:      getEnv("DB_TIMEZONE", "UTC"),
		GeoAPIBaseURL:   getEnv("GEOIP_BASE_URL", "http://ip-api.com"),
		ClientVerbosity: getEnv("CLIENT_VERBOSITY", VerbosityQuiet),
	}

	if cfg.ClientVerbosity != VerbosityQuiet && cfg.ClientVerbosity != VerbosityStatus {
		log.Printf("Unknown CLIENT_VERBOSITY %q, using %q", cfg.ClientVerbosity, VerbosityQuiet)
		cfg.ClientVerbosity = VerbosityQuiet
	}

	return cfg
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
