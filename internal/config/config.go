package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage backend names accepted in Config.Storage.Backend.
const (
	// BackendPostgres selects the networked PostgreSQL ledger.
	BackendPostgres = "postgres"
	// BackendFile selects the local flat-file ledger.
	BackendFile = "file"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the referral service being
// probed, the browser, the ledger storage backends, and email delivery.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Referral describes the external referral service whose codes are probed
	Referral struct {
		// Host is the service host referral URLs must point at, e.g. "cursor.com"
		Host string `env:"REFERRAL_HOST" env-default:"cursor.com" yaml:"host"`
	} `yaml:"referral"`

	// Browser contains headless-browser related configurations
	Browser struct {
		// Headless controls whether the probing browser runs without a visible window
		Headless bool `env:"BROWSER_HEADLESS" env-default:"true" yaml:"headless"`
	} `yaml:"browser"`

	// Storage selects and configures the ledger backend
	Storage struct {
		// Backend is the ledger implementation to use: "postgres" or "file"
		Backend string `env:"STORAGE_BACKEND" env-default:"file" yaml:"backend"`
		// Dir is the directory holding the flat-file ledger (file backend only)
		Dir string `env:"STORAGE_DIR" env-default:"." yaml:"dir"`
	} `yaml:"storage"`

	// Database contains all database connection related configurations (postgres backend only)
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"creditor" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Email contains notification delivery configurations. When APIKey is
	// empty, credits are allocated without an outbound message (local mode).
	Email struct {
		// APIKey authenticates against the Resend API
		APIKey string `env:"EMAIL_API_KEY" env-default:"" yaml:"apiKey"`
		// FromAddress is the sender address for credit notifications
		FromAddress string `env:"EMAIL_FROM_ADDRESS" env-default:"" yaml:"fromAddress"`
	} `yaml:"email"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
