package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Unset variables fall back to the defaults
// the original deployment used, so a bare `go run ./cmd/server` against a
// local Postgres works out of the box.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name

	EmailUser     string // SMTP account used as the From address; empty disables email
	EmailPassword string // SMTP account password
	SMTPHost      string // SMTP server host
	SMTPPort      string // SMTP server port

	AMQPURL string // RabbitMQ connection URL; empty disables event publishing

	JWTSecret         string // secret used to sign admin tokens
	AdminPasswordHash string // bcrypt hash of the operator password
	AccessTTLMin      int    // admin token time-to-live in minutes
}

// Load reads configuration values from environment variables and
// returns a Config.  Nothing is fatal here: optional integrations
// (email, queue, admin) degrade to disabled when their variables are
// missing.
func Load() Config {
	return Config{
		Env:    getenv("APP_ENV", "dev"),
		Port:   getenv("APP_PORT", getenv("PORT", "3000")),
		DBUser: getenv("DB_USER", "postgres"),
		DBPass: os.Getenv("DB_PASSWORD"),
		DBHost: getenv("DB_HOST", "localhost"),
		DBPort: getenv("DB_PORT", "5432"),
		DBName: getenv("DB_NAME", "pampanga_restaurant"),

		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getenv("SMTP_PORT", "587"),

		AMQPURL: getenv("RABBITMQ_URL", os.Getenv("AMQP_URL")),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AccessTTLMin:      envInt("ACCESS_TOKEN_TTL_MIN", 60),
	}
}

// AdminEnabled reports whether the operator endpoints can be served.
// Both the signing secret and the password hash must be present.
func (c Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}

// EmailEnabled reports whether SMTP credentials were provided.
func (c Config) EmailEnabled() bool {
	return c.EmailUser != "" && c.EmailPassword != ""
}

// Shared env helpers used across the config files in this package.

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
