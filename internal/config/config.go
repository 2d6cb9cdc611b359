package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // sqlite, sqlite3, mysql, mariadb, postgres, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string // file path for sqlite
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBConnectionLimit int
	DBAutoMigrate     bool
	DBLogLevel        string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// Networked reports whether the configured database is reached over TCP
func (c *Config) Networked() bool {
	switch c.DBType {
	case "sqlite", "sqlite3":
		return false
	}
	return true
}

// LoadFile loads an .env file into the environment, then calls Load.
// An empty filename skips the file.
func LoadFile(filename string) (*Config, error) {
	if filename != "" {
		if err := godotenv.Load(filename); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", filename, err)
		}
	}
	return Load()
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	dbType := strings.ToLower(getEnv("DB_TYPE", "sqlite"))

	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DBType:            dbType,
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", defaultPort(dbType)),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		DBAutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", true),
		DBLogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}

	// Validate required fields
	if defaultPort(cfg.DBType) == "" && cfg.Networked() {
		return nil, fmt.Errorf("DB_TYPE %q is not supported", cfg.DBType)
	}
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.Networked() && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required for %s", cfg.DBType)
	}
	if cfg.DBConnectionLimit < 1 {
		return nil, fmt.Errorf("DB_CONNECTION_LIMIT must be at least 1")
	}

	return cfg, nil
}

func defaultPort(dbType string) string {
	switch dbType {
	case "mysql", "mariadb":
		return "3306"
	case "postgres", "postgresql":
		return "5432"
	case "sqlserver", "mssql":
		return "1433"
	}
	return ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
