package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Pricing  PricingConfig
	Schedule ScheduleConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds database connection settings.
// Priority: DATABASE_URL > individual variables > local SQLite file.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	Username string
	Password string
	Database string
	SSLMode  string
	// SQLitePath is used when neither URL nor Host is configured,
	// for local single-user installs.
	SQLitePath string
}

// PricingConfig holds the pricing constants applied on recomputation.
type PricingConfig struct {
	// ResaleDiscount is the factor applied to the sale price to derive
	// the reseller price. The legacy system used 0.80 in its seed data
	// and 0.85 in the recipe form; 0.85 is the canonical value here.
	ResaleDiscount float64
	// DefaultMargin is the percent profit margin preset on new recipes.
	DefaultMargin float64
	// DefaultPackagingCost is preset as additional costs on new recipes.
	DefaultPackagingCost float64
}

// ScheduleConfig holds production-schedule worker settings.
type ScheduleConfig struct {
	// ReminderCron fires the daily scan for schedule items due today.
	ReminderCron string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file)
// and materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes
		// from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL:        os.Getenv("DATABASE_URL"),
			Host:       os.Getenv("DB_HOST"),
			Port:       getenvWithDefault("DB_PORT", "5432"),
			Username:   getenvWithDefault("DB_USER", "postgres"),
			Password:   getenvWithDefault("DB_PASSWORD", "postgres"),
			Database:   getenvWithDefault("DB_NAME", "docegestor"),
			SSLMode:    getenvWithDefault("DB_SSLMODE", "disable"),
			SQLitePath: getenvWithDefault("SQLITE_PATH", "./data/docegestor.db"),
		},
		Pricing: PricingConfig{
			ResaleDiscount:       getenvFloat("RESALE_DISCOUNT_FACTOR", 0.85),
			DefaultMargin:        getenvFloat("DEFAULT_PROFIT_MARGIN", 35),
			DefaultPackagingCost: getenvFloat("DEFAULT_PACKAGING_COST", 0),
		},
		Schedule: ScheduleConfig{
			ReminderCron: getenvWithDefault("SCHEDULE_REMINDER_CRON", "0 7 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "America/Sao_Paulo"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Pricing.ResaleDiscount <= 0 || c.Pricing.ResaleDiscount > 1 {
		return fmt.Errorf("RESALE_DISCOUNT_FACTOR must be in (0, 1], got %v", c.Pricing.ResaleDiscount)
	}

	if c.Pricing.DefaultMargin < 0 {
		return errors.New("DEFAULT_PROFIT_MARGIN must not be negative")
	}

	if c.Schedule.ReminderCron == "" {
		return errors.New("SCHEDULE_REMINDER_CRON must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
