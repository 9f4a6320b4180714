package cmd

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"agrimarket"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Pricing knobs for checkout. Money amounts are decimal strings in
	// the platform currency.
	TaxRate               string `envconfig:"PRICING_TAX_RATE" default:"0.05"`
	DeliveryFee           string `envconfig:"PRICING_DELIVERY_FEE" default:"40"`
	FreeDeliveryThreshold string `envconfig:"PRICING_FREE_DELIVERY_THRESHOLD" default:"500"`
	CODFee                string `envconfig:"PRICING_COD_FEE" default:"20"`

	// EtaWindow is added to the pickup completion time to produce the
	// delivery estimate shown in tracking views.
	EtaWindow time.Duration `envconfig:"ETA_WINDOW" default:"4h"`

	// SessionStore selects where pickup sessions live: "memory" or "redis".
	SessionStore       string        `envconfig:"SESSION_STORE" default:"memory"`
	SessionIdleTimeout time.Duration `envconfig:"SESSION_IDLE_TIMEOUT" default:"30m"`

	RedisAddr       string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword   string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisSessionTTL time.Duration `envconfig:"REDIS_SESSION_TTL" default:"24h"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
