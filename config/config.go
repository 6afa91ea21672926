package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	Env              string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string

	// PayPal credentials, injected into the PayPal client at construction.
	PayPalBaseURL       string
	PayPalClientID      string
	PayPalClientSecret  string
	PayPalWebhookID     string
	PayPalWebhookSecret string

	// Stripe credentials, injected into the Stripe client at construction.
	StripeSecretKey     string
	StripeWebhookSecret string

	// Where the gateways redirect the buyer after checkout.
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	JWTSecret string

	// Optional Kafka settings; payment events are skipped when empty.
	KafkaBrokers string
	KafkaTopic   string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8086"),
		Env:              getEnv("APP_ENV", "development"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		PayPalBaseURL:       getEnv("PAYPAL_BASE_URL", "https://api.sandbox.paypal.com"),
		PayPalClientID:      os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalClientSecret:  os.Getenv("PAYPAL_CLIENT_SECRET"),
		PayPalWebhookID:     os.Getenv("PAYPAL_WEBHOOK_ID"),
		PayPalWebhookSecret: os.Getenv("PAYPAL_WEBHOOK_SECRET"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:5173/checkout/success"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:5173/checkout/fail"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getEnv("KAFKA_PAYMENT_TOPIC", "payment-events"),
	}

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" {
		return nil, fmt.Errorf("missing required Postgres environment variables")
	}
	if cfg.PayPalClientID == "" || cfg.PayPalClientSecret == "" || cfg.PayPalWebhookSecret == "" {
		return nil, fmt.Errorf("missing required PayPal environment variables")
	}
	if cfg.StripeSecretKey == "" || cfg.StripeWebhookSecret == "" {
		return nil, fmt.Errorf("missing required Stripe environment variables")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required JWT_SECRET environment variable")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
