package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting, loaded from the environment.
type Config struct {
	// HTTP
	ServerPort  string `envconfig:"SERVER_PORT" default:"8080"`
	MetricsPort string `envconfig:"METRICS_PORT" default:"9090"`

	// Database
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Auth
	AuthMode           string `envconfig:"AUTH_MODE" default:"static"` // "static" or "database"
	AuthRequired       bool   `envconfig:"AUTH_REQUIRED" default:"false"`
	AdminUsername      string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword      string `envconfig:"ADMIN_PASSWORD" default:"admin"`
	JWTSecret          string `envconfig:"JWT_SECRET_KEY" default:"dev-secret-change-me"`
	JWTExpirationHours int64  `envconfig:"JWT_EXPIRATION_HOURS" default:"24"`

	// Dispatch loop
	DispatchInterval  time.Duration `envconfig:"DISPATCH_INTERVAL" default:"10s"`
	DispatchBatchSize int           `envconfig:"DISPATCH_BATCH_SIZE" default:"10"`
	SendRateLimit     int           `envconfig:"SEND_RATE_LIMIT" default:"10"`

	// Outbound delivery: "log" simulates delivery, "webhook" posts to a gateway.
	DeliveryMode       string        `envconfig:"DELIVERY_MODE" default:"log"`
	DeliveryWebhookURL string        `envconfig:"DELIVERY_WEBHOOK_URL" default:""`
	DeliveryRetries    int           `envconfig:"DELIVERY_RETRIES" default:"3"`
	DeliveryTimeout    time.Duration `envconfig:"DELIVERY_TIMEOUT" default:"10s"`

	// Generative AI provider
	GeminiAPIKey  string        `envconfig:"GEMINI_API_KEY" default:""`
	GeminiTimeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"30s"`

	// Optional Redis stats cache; disabled when REDIS_ADDR is empty.
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:""`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	StatsCacheTTL time.Duration `envconfig:"STATS_CACHE_TTL" default:"30s"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
