package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	Environment string
	ServerPort  int

	DatabaseURL string

	JWTSecretKey      string
	AdminSignupSecret string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSBucketName      string
	PublicBaseURL      string

	// SMTP настройки опциональны: без них email-уведомления отключены.
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
	SMTPTo   string
}

// IsProduction reports whether the app runs with production hardening
// (Secure cookies, among other things).
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// EmailEnabled reports whether enough SMTP configuration is present to send
// notification emails.
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && c.SMTPTo != ""
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()

	cfg := &Config{
		Environment:        os.Getenv("APP_ENV"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		AdminSignupSecret:  os.Getenv("ADMIN_SIGNUP_SECRET"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSBucketName:      os.Getenv("AWS_BUCKET_NAME"),
		PublicBaseURL:      os.Getenv("PUBLIC_BASE_URL"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPass:           os.Getenv("SMTP_PASS"),
		SMTPFrom:           os.Getenv("SMTP_FROM"),
		SMTPTo:             os.Getenv("SMTP_TO"),
	}

	required := []struct {
		name  string
		value string
	}{
		{"DATABASE_URL", cfg.DatabaseURL},
		{"JWT_SECRET_KEY", cfg.JWTSecretKey},
		{"ADMIN_SIGNUP_SECRET", cfg.AdminSignupSecret},
		{"AWS_REGION", cfg.AWSRegion},
		{"AWS_ACCESS_KEY_ID", cfg.AWSAccessKeyID},
		{"AWS_SECRET_ACCESS_KEY", cfg.AWSSecretAccessKey},
		{"AWS_BUCKET_NAME", cfg.AWSBucketName},
		{"PUBLIC_BASE_URL", cfg.PublicBaseURL},
	}
	for _, v := range required {
		if v.value == "" {
			return nil, fmt.Errorf("%s environment variable is not set", v.name)
		}
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080" // Порт по умолчанию
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}
	cfg.ServerPort = port

	if smtpPortStr := os.Getenv("SMTP_PORT"); smtpPortStr != "" {
		smtpPort, err := strconv.Atoi(smtpPortStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT environment variable: %w", err)
		}
		cfg.SMTPPort = smtpPort
	} else {
		cfg.SMTPPort = 587
	}

	return cfg, nil
}
