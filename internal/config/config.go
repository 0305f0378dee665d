package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBPath          string
	BaseURL         string
	LogLevel        string
	AdminToken      string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPassword    string
	MailFrom        string
	MailWorkerCount int
	MailQueueSize   int
	SessionTTLHours int
	MagicLinkTTLMin int
	SessionSize     int
	ReminderHour    int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		DBPath:          envOr("DB_PATH", "file:farsiflash.db"),
		BaseURL:         envOr("BASE_URL", "http://localhost:8080"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		AdminToken:      envOr("ADMIN_TOKEN", ""),
		SMTPHost:        envOr("SMTP_HOST", ""),
		SMTPPort:        envIntOr("SMTP_PORT", 587),
		SMTPUser:        envOr("SMTP_USER", ""),
		SMTPPassword:    envOr("SMTP_PASSWORD", ""),
		MailFrom:        envOr("MAIL_FROM", "FarsiFlash <no-reply@farsiflash.local>"),
		MailWorkerCount: envIntOr("MAIL_WORKER_COUNT", 2),
		MailQueueSize:   envIntOr("MAIL_QUEUE_SIZE", 64),
		SessionTTLHours: envIntOr("SESSION_TTL_HOURS", 720),
		MagicLinkTTLMin: envIntOr("MAGIC_LINK_TTL_MIN", 15),
		SessionSize:     envIntOr("SESSION_SIZE", 10),
		ReminderHour:    envIntOr("REMINDER_HOUR", 17),
	}
}

// Validate checks the configuration for values the server cannot start with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("BASE_URL cannot be empty")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("SMTP_PORT must be a valid port, got %d", c.SMTPPort)
	}
	if c.MailWorkerCount <= 0 {
		return fmt.Errorf("MAIL_WORKER_COUNT must be positive, got %d", c.MailWorkerCount)
	}
	if c.MailQueueSize <= 0 {
		return fmt.Errorf("MAIL_QUEUE_SIZE must be positive, got %d", c.MailQueueSize)
	}
	if c.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", c.SessionTTLHours)
	}
	if c.MagicLinkTTLMin <= 0 {
		return fmt.Errorf("MAGIC_LINK_TTL_MIN must be positive, got %d", c.MagicLinkTTLMin)
	}
	if c.SessionSize <= 0 {
		return fmt.Errorf("SESSION_SIZE must be positive, got %d", c.SessionSize)
	}
	if c.ReminderHour < 0 || c.ReminderHour > 23 {
		return fmt.Errorf("REMINDER_HOUR must be an hour of the day, got %d", c.ReminderHour)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
