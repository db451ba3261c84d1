package configuration

import (
	"fmt"
	"os"
)

type Config struct {
	Database      DatabaseConfig
	Server        ServerConfig
	NATSURL       string
	OIDCIssuerURL string
	CLAMAVURL     string
	PublicBaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Port string
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "wickedfiles"),
			Password: getEnv("DB_PASSWORD", "wickedfiles"),
			DBName:   getEnv("DB_NAME", "wickedfiles"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		NATSURL:       getEnv("NATS_URL", "nats://localhost:4222"),
		CLAMAVURL:     getEnv("CLAMAV_URL", "tcp://localhost:3310"),
		OIDCIssuerURL: getEnv("OIDC_ISSUER_URL", "http://localhost:8081/realms/wickedfiles"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
