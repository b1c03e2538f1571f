package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty       bool          `envconfig:"LOG_PRETTY" default:"false"`
	LandingPage     string        `envconfig:"LANDING_PAGE" default:"web/index.html"`
	AppointmentLog  string        `envconfig:"APPOINTMENT_LOG" default:"appointments.txt"`
	KeepAlive       bool          `envconfig:"HTTP_KEEP_ALIVE" default:"false"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	CORSOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`

	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`
	Gemini    GeminiConfig    `envconfig:"GEMINI"`
	Textbelt  TextbeltConfig  `envconfig:"TEXTBELT"`
	Booking   BookingConfig   `envconfig:"BOOKING_REFERENCE"`
}

// RateLimitConfig disables limiting when RPS is zero.
type RateLimitConfig struct {
	RPS   float64 `envconfig:"RPS" default:"20"`
	Burst int     `envconfig:"BURST" default:"40"`
}

type GeminiConfig struct {
	APIKey          string        `envconfig:"API_KEY"`
	Endpoint        string        `envconfig:"ENDPOINT" default:"https://generativelanguage.googleapis.com/v1beta/models"`
	Model           string        `envconfig:"MODEL" default:"gemini-1.5-flash-latest"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"20s"`
	CacheTTL        time.Duration `envconfig:"CACHE_TTL" default:"10m"`
	BreakerFailures uint32        `envconfig:"BREAKER_FAILURES" default:"5"`
}

type TextbeltConfig struct {
	APIKey   string `envconfig:"API_KEY"`
	Endpoint string `envconfig:"ENDPOINT" default:"https://textbelt.com/text"`
}

type BookingConfig struct {
	Secret string        `envconfig:"SECRET"`
	TTL    time.Duration `envconfig:"TTL" default:"720h"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}
	if cfg.RateLimit.RPS < 0 || cfg.RateLimit.Burst < 0 {
		return nil, fmt.Errorf("rate limit values must be non-negative")
	}

	return &cfg, nil
}
