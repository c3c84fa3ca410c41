package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Auth struct {
		AdminUsername     string `yaml:"admin_username" env:"AUTH_ADMIN_USERNAME"`
		AdminPasswordHash string `yaml:"admin_password_hash" env:"AUTH_ADMIN_PASSWORD_HASH"`
	} `yaml:"auth"`

	Logging struct {
		Level      string `yaml:"level" env:"LOG_LEVEL"`
		Format     string `yaml:"format" env:"LOG_FORMAT"`
		File       string `yaml:"file" env:"LOG_FILE"`
		MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB"`
		MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS"`
		MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS"`
	} `yaml:"logging"`

	Availability struct {
		MinGap   string `yaml:"min_gap" env:"AVAILABILITY_MIN_GAP"`
		Timezone string `yaml:"timezone" env:"AVAILABILITY_TIMEZONE"`
	} `yaml:"availability"`

	Seed struct {
		Corps         []string `yaml:"corps" env:"SEED_CORPS" envSeparator:","`
		SemesterStart string   `yaml:"semester_start" env:"SEED_SEMESTER_START"`
	} `yaml:"seed"`

	Storage struct {
		ImportArchiveDir string `yaml:"import_archive_dir" env:"STORAGE_IMPORT_ARCHIVE_DIR"`
		BaseURL          string `yaml:"base_url" env:"STORAGE_BASE_URL"`
	} `yaml:"storage"`

	Firebase struct {
		Enabled         bool   `yaml:"enabled" env:"FIREBASE_ENABLED"`
		CredentialsFile string `yaml:"credentials_file" env:"FIREBASE_CREDENTIALS_FILE"`
		DatabaseURL     string `yaml:"database_url" env:"FIREBASE_DATABASE_URL"`
		// Republish today's snapshot after schedule changes
		AutoPublish bool   `yaml:"auto_publish" env:"FIREBASE_AUTO_PUBLISH"`
		Debounce    string `yaml:"debounce" env:"FIREBASE_DEBOUNCE"`
		WindowStart string `yaml:"window_start" env:"FIREBASE_WINDOW_START"`
		WindowEnd   string `yaml:"window_end" env:"FIREBASE_WINDOW_END"`
	} `yaml:"firebase"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Variables already set in the environment win over .env
	_ = godotenv.Load()

	// Override with environment variables
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ShutdownTimeout = "5s"

	// Database defaults
	config.Database.Driver = "postgres"
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "mephi_schedule"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	// JWT defaults
	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "mephi-schedule"

	config.Auth.AdminUsername = "admin"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.MaxSizeMB = 100
	config.Logging.MaxBackups = 5
	config.Logging.MaxAgeDays = 30

	config.Availability.MinGap = "10m"
	config.Availability.Timezone = "Europe/Moscow"

	config.Storage.ImportArchiveDir = "uploads/imports"

	config.Firebase.Debounce = "5s"
	config.Firebase.WindowStart = "08:30"
	config.Firebase.WindowEnd = "22:50"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	// Ensure required fields are set
	if config.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime: %w", err)
	}

	gap, err := time.ParseDuration(config.Availability.MinGap)
	if err != nil {
		return fmt.Errorf("invalid availability min gap: %w", err)
	}
	if gap < 0 {
		return fmt.Errorf("availability min gap must not be negative")
	}

	if _, err := time.LoadLocation(config.Availability.Timezone); err != nil {
		return fmt.Errorf("invalid availability timezone: %w", err)
	}

	if config.Seed.SemesterStart != "" {
		if _, err := time.Parse("2006-01-02", config.Seed.SemesterStart); err != nil {
			return fmt.Errorf("invalid seed semester start, expected YYYY-MM-DD: %w", err)
		}
	}

	if config.Firebase.Enabled && config.Firebase.DatabaseURL == "" {
		return fmt.Errorf("firebase database url is required when firebase is enabled")
	}

	if _, err := time.ParseDuration(config.Firebase.Debounce); err != nil {
		return fmt.Errorf("invalid firebase debounce: %w", err)
	}

	for _, hhmm := range []string{config.Firebase.WindowStart, config.Firebase.WindowEnd} {
		if _, err := time.Parse("15:04", hhmm); err != nil {
			return fmt.Errorf("invalid firebase publish window %q, expected HH:MM", hhmm)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// MinGap returns the parsed availability threshold
func (c *Config) MinGap() time.Duration {
	gap, err := time.ParseDuration(c.Availability.MinGap)
	if err != nil {
		return 10 * time.Minute
	}
	return gap
}

// Location returns the time zone used to resolve "today"
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Availability.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AccessTokenTTL returns the parsed JWT lifetime
func (c *Config) AccessTokenTTL() time.Duration {
	ttl, err := time.ParseDuration(c.JWT.AccessTokenExpiration)
	if err != nil {
		return 24 * time.Hour
	}
	return ttl
}

// PublishDebounce returns how long schedule changes are coalesced before republishing
func (c *Config) PublishDebounce() time.Duration {
	d, err := time.ParseDuration(c.Firebase.Debounce)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// IsProduction reports whether the server runs in release mode
func (c *Config) IsProduction() bool {
	mode := strings.ToLower(c.Server.Mode)
	return mode == "production" || mode == "release"
}
