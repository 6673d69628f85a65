package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port        string `yaml:"port"`
		Mode        string `yaml:"mode"`
		StoragePath string `yaml:"storage_path"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host"`
		Port            string `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		DBName          string `yaml:"dbname"`
		SSLMode         string `yaml:"sslmode"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret"`
		AccessTokenExpiration string `yaml:"access_token_expiration"`
		Issuer                string `yaml:"issuer"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; environment variables win either way
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "bayms"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "bayms.org"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	config.Server.Port = GetEnv("SERVER_PORT", config.Server.Port)
	config.Server.Mode = GetEnv("SERVER_MODE", config.Server.Mode)
	config.Server.StoragePath = GetEnv("SERVER_STORAGE_PATH", config.Server.StoragePath)

	config.Database.Host = GetEnv("DB_HOST", config.Database.Host)
	config.Database.Port = GetEnv("DB_PORT", config.Database.Port)
	config.Database.User = GetEnv("DB_USER", config.Database.User)
	config.Database.Password = GetEnv("DB_PASSWORD", config.Database.Password)
	config.Database.DBName = GetEnv("DB_NAME", config.Database.DBName)
	config.Database.SSLMode = GetEnv("DB_SSLMODE", config.Database.SSLMode)
	config.Database.MaxIdleConns = GetEnvAsInt("DB_MAX_IDLE_CONNS", config.Database.MaxIdleConns)
	config.Database.MaxOpenConns = GetEnvAsInt("DB_MAX_OPEN_CONNS", config.Database.MaxOpenConns)
	config.Database.ConnMaxLifetime = GetEnv("DB_CONN_MAX_LIFETIME", config.Database.ConnMaxLifetime)

	config.JWT.Secret = GetEnv("JWT_SECRET", config.JWT.Secret)
	config.JWT.AccessTokenExpiration = GetEnv("JWT_ACCESS_TOKEN_EXPIRATION", config.JWT.AccessTokenExpiration)
	config.JWT.Issuer = GetEnv("JWT_ISSUER", config.JWT.Issuer)

	config.Logging.Level = GetEnv("LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetEnv("LOG_FORMAT", config.Logging.Format)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
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
		return fmt.Errorf("invalid connection max lifetime format: %w", err)
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
