package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	// JWT
	JWTSecret     string
	TokenTTLHours int // 0 means issued tokens never expire
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		DBUser:        getEnv("DB_USER", ""),
		DBPass:        getEnv("DB_PASS", ""),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "notes"),
		JWTSecret:     getEnv("SECRET", ""),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 0),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("SECRET environment variable is required")
	}
	if cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER environment variable is required")
	}
	if cfg.DBPass == "" {
		return nil, fmt.Errorf("DB_PASS environment variable is required")
	}

	return cfg, nil
}

// DatabaseURL assembles the connection string from the individual credentials.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
