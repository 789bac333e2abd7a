package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Backend settings are optional on purpose: a missing URL or key leaves the
// service running on adapters that report "not configured".
type Config struct {
	Server   ServerConfig
	Supabase SupabaseConfig
	DB       DBConfig
	Local    LocalConfig
	Booking  BookingConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" default:"9090"`
	GinMode string `envconfig:"GIN_MODE"`
}

type SupabaseConfig struct {
	URL               string        `envconfig:"SUPABASE_URL"`
	AnonKey           string        `envconfig:"SUPABASE_ANON_KEY"`
	JWTSecret         string        `envconfig:"SUPABASE_JWT_SECRET"`
	AvatarBucket      string        `envconfig:"SUPABASE_AVATAR_BUCKET" default:"avatars"`
	RequestsPerSecond float64       `envconfig:"SUPABASE_REQUESTS_PER_SECOND" default:"0"`
	Timeout           time.Duration `envconfig:"SUPABASE_TIMEOUT" default:"10s"`
}

// Configured reports whether a hosted auth/storage client can be built.
func (c SupabaseConfig) Configured() bool {
	if strings.TrimSpace(c.URL) == "" || strings.TrimSpace(c.AnonKey) == "" {
		return false
	}
	return strings.HasPrefix(c.URL, "http://") || strings.HasPrefix(c.URL, "https://")
}

type DBConfig struct {
	URL        string `envconfig:"DATABASE_URL"`
	InitSchema bool   `envconfig:"DB_INIT_SCHEMA" default:"false"`
}

func (c DBConfig) Configured() bool {
	return strings.TrimSpace(c.URL) != ""
}

type LocalConfig struct {
	StorePath string `envconfig:"LOCAL_STORE_PATH"`
}

// ResolveStorePath returns the SQLite file used for device-local data,
// defaulting to ~/.jungle/local.db.
func (c LocalConfig) ResolveStorePath() (string, error) {
	if c.StorePath != "" {
		return c.StorePath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, ".jungle", "local.db"), nil
}

type BookingConfig struct {
	Timezone            string        `envconfig:"BOOKING_TIMEZONE" default:"Europe/Rome"`
	SessionWait         time.Duration `envconfig:"SESSION_WAIT" default:"3s"`
	SessionPollInterval time.Duration `envconfig:"SESSION_POLL_INTERVAL" default:"250ms"`
}

func (c BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:8081,http://localhost:19006"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Device-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	logger := slog.Default().With("component", "config")

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "err", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	return cfg, nil
}
