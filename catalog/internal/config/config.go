// Package config loads catalog service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/text/currency"
)

type Config struct {
	HTTPAddr         string
	GRPCAddr         string
	DatabaseURL      string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	CardCacheTTL     time.Duration
	ZMQPort          string
	JWTSecret        string
	AdminUsername    string
	AdminPassword    string
	NewReleaseWindow time.Duration
	Currency         string
	Locale           string
	RefreshInterval  time.Duration
}

func Load() Config {
	return Config{
		HTTPAddr:         get("HTTP_ADDR", ":5060"),
		GRPCAddr:         get("GRPC_ADDR", ":50053"),
		DatabaseURL:      get("DATABASE_URL", ""),
		RedisAddr:        get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    get("REDIS_PW", ""),
		RedisDB:          getInt("REDIS_DB", 0),
		CardCacheTTL:     time.Duration(getInt("CARD_CACHE_TTL_SEC", 3600)) * time.Second,
		ZMQPort:          get("ZMQ_PORT", "5557"),
		JWTSecret:        get("JWT_SECRET", ""),
		AdminUsername:    get("ADMIN_USERNAME", ""),
		AdminPassword:    get("ADMIN_PASSWORD", ""),
		NewReleaseWindow: time.Duration(getInt("NEW_RELEASE_WINDOW_HOURS", 30*24)) * time.Hour,
		Currency:         get("CURRENCY", "USD"),
		Locale:           get("LOCALE", "en-US"),
		RefreshInterval:  time.Duration(getInt("REFRESH_INTERVAL_SEC", 3600)) * time.Second,
	}
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL environment variable is not set")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is not set")
	}
	if c.NewReleaseWindow <= 0 {
		return fmt.Errorf("NEW_RELEASE_WINDOW_HOURS must be positive, got %s", c.NewReleaseWindow)
	}
	if c.CardCacheTTL <= 0 {
		return fmt.Errorf("CARD_CACHE_TTL_SEC must be positive, got %s", c.CardCacheTTL)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("REFRESH_INTERVAL_SEC must be positive, got %s", c.RefreshInterval)
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("CURRENCY %q: %w", c.Currency, err)
	}
	return nil
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
