// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	ErrAPIURLMissing = errors.New("environment variable API_URL must be set")
	ErrJWTSecret     = errors.New("environment variable JWT_SECRET must be set")
)

// Config is the configuration of the backend.
type Config struct {
	APIURL *url.URL

	GinMode   string
	LogFormat string
	LogFile   string

	// DatabaseDSN is used for SQLite. If DatabaseHost is set,
	// PostgreSQL is used instead.
	DatabaseDSN      string
	DatabaseHost     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string

	CORSAllowOrigins []string
	EnablePprof      bool

	JWTSecret    string
	JWTExpiresIn time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string

	ReportTimeout time.Duration

	// RateLimitRPS of 0 disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads a .env file if there is one and builds the Config from
// the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env file: %w", err)
	} else if err == nil {
		log.Debug().Msg("loaded environment from .env")
	}

	return FromEnv()
}

// FromEnv builds the Config from the environment only.
func FromEnv() (Config, error) {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return Config{}, ErrAPIURLMissing
	}

	u, err := url.Parse(strings.TrimSuffix(apiURL, "/"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	c := Config{
		APIURL:             u,
		GinMode:            getEnv("GIN_MODE", "release"),
		LogFormat:          os.Getenv("LOG_FORMAT"),
		LogFile:            os.Getenv("LOG_FILE"),
		DatabaseDSN:        getEnv("DB_DSN", "data/fintrack.db"),
		DatabaseHost:       os.Getenv("DB_HOST"),
		DatabaseUser:       os.Getenv("DB_USER"),
		DatabasePassword:   os.Getenv("DB_PASSWORD"),
		DatabaseName:       getEnv("DB_NAME", "fintrack"),
		CORSAllowOrigins:   strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:        os.Getenv("ENABLE_PPROF") == "true",
		JWTSecret:          os.Getenv("JWT_SECRET"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  os.Getenv("GOOGLE_REDIRECT_URI"),
	}

	if c.JWTSecret == "" {
		return Config{}, ErrJWTSecret
	}

	c.JWTExpiresIn, err = ParseDuration(getEnv("JWT_EXPIRES_IN", "7d"))
	if err != nil {
		return Config{}, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}

	c.ReportTimeout, err = ParseDuration(getEnv("REPORT_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("REPORT_TIMEOUT: %w", err)
	}

	c.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "0"), 64)
	if err != nil || c.RateLimitRPS < 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be a non-negative number, got %q", os.Getenv("RATE_LIMIT_RPS"))
	}

	c.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil || c.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be a positive integer, got %q", os.Getenv("RATE_LIMIT_BURST"))
	}

	return c, nil
}

// PostgresDSN returns the DSN for PostgreSQL. It is empty when no
// database host is configured.
func (c Config) PostgresDSN() string {
	if c.DatabaseHost == "" {
		return ""
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC", c.DatabaseHost, c.DatabaseUser, c.DatabasePassword, c.DatabaseName)
}

// ParseDuration parses a duration like time.ParseDuration, but also
// accepts a number of days, e.g. "7d".
func ParseDuration(s string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}

	return d, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
