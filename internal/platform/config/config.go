package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// MigrationsPath is the golang-migrate source URL.
	MigrationsPath string

	// CollectorAPIKeyHash is the bcrypt hash of the key the web collector
	// presents on write endpoints. Empty means unprotected (development).
	CollectorAPIKeyHash string

	// IngestRatePerMinute caps collector writes per client IP.
	IngestRatePerMinute int64

	// CORSAllowedOrigins is the comma-separated origin list for the read API.
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("COLLECTOR_API_KEY_HASH", "")
	viper.SetDefault("INGEST_RATE_PER_MINUTE", int64(30))
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	// Environment variables override defaults and .env file values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
		// Consider returning an error depending on requirements
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.CollectorAPIKeyHash = viper.GetString("COLLECTOR_API_KEY_HASH")
	if cfg.CollectorAPIKeyHash == "" {
		log.Println("Warning: COLLECTOR_API_KEY_HASH not set. Write endpoints are unprotected.")
	}

	cfg.IngestRatePerMinute = viper.GetInt64("INGEST_RATE_PER_MINUTE")
	if cfg.IngestRatePerMinute <= 0 {
		cfg.IngestRatePerMinute = 30
		log.Printf("Warning: Invalid INGEST_RATE_PER_MINUTE. Defaulting to %d.\n", cfg.IngestRatePerMinute)
	}

	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}
