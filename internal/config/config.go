package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the binaries read from the environment. A .env
// file is honored when present so local runs match deploys.
type Config struct {
	DatabaseURL string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	PortalTTL   time.Duration

	AppBaseURL    string
	PortalBaseURL string

	WebhookSecret   string
	CheckoutBaseURL string

	ResendAPIKey string
	EmailFrom    string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        envOrDefault("PORT", "8080"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      durationOrDefault("JWT_TTL", 24*time.Hour),
		PortalTTL:   durationOrDefault("PORTAL_UNLOCK_TTL", 12*time.Hour),

		AppBaseURL:    envOrDefault("APP_BASE_URL", "http://localhost:3000"),
		PortalBaseURL: envOrDefault("PORTAL_BASE_URL", "http://localhost:3000/p"),

		WebhookSecret:   os.Getenv("PAYMENT_WEBHOOK_SECRET"),
		CheckoutBaseURL: envOrDefault("CHECKOUT_BASE_URL", "https://checkout.shootsuite.app/session"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    envOrDefault("EMAIL_FROM", "ShootSuite <noreply@shootsuite.app>"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	return cfg
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func durationOrDefault(name string, def time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using default %s", name, v, def)
		return def
	}
	return d
}
