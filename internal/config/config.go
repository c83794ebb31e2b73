package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr       string
	AllowedOrigins []string

	// Postgres
	DatabaseURL string

	// RabbitMQ
	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	// Gateway de pagamento
	GatewayURL     string
	GatewayAPIKey  string
	GatewayTimeout time.Duration

	// Janela para expirar assinaturas presas em PENDING
	PendingWindow time.Duration

	// SMTP
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

// Load lê as variáveis de ambiente (godotenv já rodou no main).
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		AllowedOrigins: getEnvSlice("CORS_ORIGINS", []string{"http://localhost:5173", "*"}),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RabbitUser: getEnv("RABBITMQ_USER", "user"),
		RabbitPass: getEnv("RABBITMQ_PASS", "password"),
		RabbitHost: getEnv("RABBITMQ_HOST", "localhost"),
		RabbitPort: getEnv("RABBITMQ_PORT", "5672"),

		GatewayURL:     getEnv("GATEWAY_URL", ""),
		GatewayAPIKey:  getEnv("GATEWAY_API_KEY", ""),
		GatewayTimeout: getEnvDuration("GATEWAY_TIMEOUT", 10*time.Second),

		PendingWindow: getEnvDuration("PENDING_EXPIRATION_WINDOW", 30*time.Minute),

		SMTPHost: getEnv("MAIL_HOST", ""),
		SMTPPort: getEnvInt("MAIL_PORT", 587),
		SMTPUser: getEnv("MAIL_USER", ""),
		SMTPPass: getEnv("MAIL_PASS", ""),
		SMTPFrom: getEnv("MAIL_FROM", "nao-responda@cartaomaisvidah.com.br"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		return strings.Split(v, ",")
	}
	return fallback
}
