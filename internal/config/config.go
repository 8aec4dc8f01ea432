package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "loonbedrijf.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
	defaultUploadsDir  = "./uploads"
	defaultStaticBase  = "/static/uploads"
	defaultGCGrace     = "24h"
)

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	UploadsDir  string
	StaticBase  string
	// GCGrace is how old an upload must be before the reconciliation pass
	// may remove it when unreferenced.
	GCGrace time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.UploadsDir = getEnv("UPLOADS_DIR", defaultUploadsDir)
	cfg.StaticBase = getEnv("STATIC_BASE", defaultStaticBase)

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.GCGrace, err = parseDurationEnv("STORAGE_GC_GRACE", defaultGCGrace)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.GCGrace < 0 {
		return fmt.Errorf("STORAGE_GC_GRACE must not be negative")
	}
	if IsProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}
	return nil
}

// IsProdLike reports whether env names a production deployment.
func IsProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
