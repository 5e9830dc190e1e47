package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	MediaProviderR2     = "r2"
	MediaProviderImages = "cloudflare-images"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
	Currency      string
}

type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	JWTSecret   string

	Stripe StripeConfig

	MediaProvider    string
	R2               R2Config
	CloudflareImages struct {
		AccountID string
		Token     string
		Hash      string // Images CDN URL'leri için hash değeri
	}

	Resend struct {
		APIKey   string
		From     string
		FromName string
	}

	RabbitMQURL string

	CORSOrigins    string
	RateLimitMax   int
	TicketQRPrefix string
}

func LoadConfig() *Config {
	cfg := &Config{
		Env:         getEnv("APP_ENV", "production"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	cfg.Stripe = StripeConfig{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		SuccessURL:    getEnv("STRIPE_SUCCESS_URL", "http://localhost:3000/payment/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     getEnv("STRIPE_CANCEL_URL", "http://localhost:3000/payment/cancel"),
		Currency:      strings.ToLower(getEnv("STRIPE_CURRENCY", "gbp")),
	}

	// R2 config
	cfg.MediaProvider = getEnv("MEDIA_PROVIDER", MediaProviderR2)
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	// Cloudflare Images config
	cfg.CloudflareImages.AccountID = os.Getenv("CLOUDFLARE_ACCOUNT_ID")
	cfg.CloudflareImages.Token = os.Getenv("CLOUDFLARE_IMAGES_TOKEN")
	cfg.CloudflareImages.Hash = os.Getenv("CLOUDFLARE_IMAGES_HASH")

	cfg.Resend.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Resend.From = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Resend.FromName = getEnv("EMAIL_FROM_NAME", "Eventix")

	cfg.RabbitMQURL = os.Getenv("RABBITMQ_URL")

	cfg.CORSOrigins = getEnv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173")
	cfg.RateLimitMax = getEnvInt("RATE_LIMIT_MAX", 60)
	cfg.TicketQRPrefix = getEnv("TICKET_QR_PREFIX", "eventix:order:")

	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
