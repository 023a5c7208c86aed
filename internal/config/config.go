// Package config loads the runtime settings: where to listen, the
// cookie secret, and the business contact block that feeds every page
// footer, the contact page, and the order deep links.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

type Business struct {
	Name         string `validate:"required"`
	Phone        string `validate:"required"` // dialable, symbols allowed
	PhoneDisplay string `validate:"required"`
	Email        string `validate:"required,email"`
	Address      string `validate:"required"`
	Hours        string `validate:"required"`
	MapsEmbedURL string `validate:"omitempty,url"`
	WhatsAppLink string `validate:"required,url"`
}

type Config struct {
	Addr         string `validate:"required"`
	Env          string `validate:"required,oneof=development production"`
	CookieSecret string `validate:"required,min=16"`
	SecureCookie bool

	Business Business
}

// Load reads env vars (godotenv has already been applied by the
// caller) and validates the result once at boot.
func Load() (Config, error) {
	cfg := Config{
		Addr:         envOr("ADDR", ":8080"),
		Env:          envOr("APP_ENV", "development"),
		CookieSecret: os.Getenv("COOKIE_SECRET"),
		Business: Business{
			Name:         envOr("BUSINESS_NAME", "Raajabaackiam Traders"),
			Phone:        envOr("BUSINESS_PHONE", "+91 94433 55596"),
			PhoneDisplay: envOr("BUSINESS_PHONE_DISPLAY", "+91 94433 55596"),
			Email:        envOr("BUSINESS_EMAIL", "raajabaackiamtraders@gmail.com"),
			Address:      envOr("BUSINESS_ADDRESS", "118 Bazaar Street, Ammapet, Salem, Tamil Nadu 636003"),
			Hours:        envOr("BUSINESS_HOURS", "Mon-Sat: 8:30 AM to 9:00 PM, Sun: 8:30 AM to 1:00 PM"),
			MapsEmbedURL: os.Getenv("BUSINESS_MAPS_EMBED_URL"),
			WhatsAppLink: envOr("BUSINESS_WHATSAPP_LINK", "https://wa.me/919443355596"),
		},
	}
	cfg.SecureCookie = cfg.Env == "production"

	// Development convenience only; production must set its own.
	if cfg.CookieSecret == "" && cfg.Env == "development" {
		cfg.CookieSecret = "dev-only-cookie-secret"
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
