package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Resend   ResendConfig
	Paystack PaystackConfig
	Checkout CheckoutConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type SessionConfig struct {
	Secret string
}

type ResendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type PaystackConfig struct {
	SecretKey   string
	PublicKey   string
	Environment string
	CallbackURL string
}

type CheckoutConfig struct {
	SendTimeoutSeconds  int
	ResendMaxAttempts   int
	ResendWindowMinutes int
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		},
		Resend: ResendConfig{
			APIKey:    getEnv("RESEND_API_KEY", ""),
			FromEmail: getEnv("RESEND_FROM_EMAIL", "noreply@menadirectory.com"),
			FromName:  getEnv("RESEND_FROM_NAME", "MENA Business Directory"),
		},
		Paystack: PaystackConfig{
			SecretKey:   getEnv("PAYSTACK_SECRET_KEY", ""),
			PublicKey:   getEnv("PAYSTACK_PUBLIC_KEY", ""),
			Environment: getEnv("PAYSTACK_ENVIRONMENT", "test"),
			CallbackURL: getEnv("PAYSTACK_CALLBACK_URL", "http://localhost:8080/checkout/callback"),
		},
		Checkout: CheckoutConfig{
			SendTimeoutSeconds:  getEnvAsInt("CHECKOUT_SEND_TIMEOUT_SECONDS", 10),
			ResendMaxAttempts:   getEnvAsInt("CHECKOUT_RESEND_MAX_ATTEMPTS", 5),
			ResendWindowMinutes: getEnvAsInt("CHECKOUT_RESEND_WINDOW_MINUTES", 15),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
