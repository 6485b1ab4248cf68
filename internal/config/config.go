package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Database
	DatabaseURL    string
	DatabaseDriver string
	MigrateOnStart bool

	// Session
	SessionMaxAge          int // 秒。0の場合は期限なし
	SessionCleanupInterval time.Duration

	// Rate Limit（req/min）
	RateLimitGeneral int
	RateLimitLogin   int

	// Logging
	LogLevel string

	// Server
	ServerPort string

	// Cookie
	CookieSecure bool
	CookieDomain string

	// CORS / CSRF
	CORSAllowedOrigin string
	CSRFEnabled       bool
}

// supportedDrivers はDATABASE_DRIVERに指定できる値。
var supportedDrivers = map[string]bool{
	"postgres": true,
	"pgx":      true,
	"sqlite":   true,
}

// Load は環境変数からConfigを読み込む。
// 必須環境変数が未設定の場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{}

	// Required fields
	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	cfg.DatabaseDriver = strings.ToLower(getEnvString("DATABASE_DRIVER", "postgres"))
	if !supportedDrivers[cfg.DatabaseDriver] {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER: %q", cfg.DatabaseDriver)
	}

	// Optional fields with defaults
	cfg.MigrateOnStart = getEnvBool("MIGRATE_ON_START", false)
	// 負の値は「無期限」として0に丸める。Cookieの負のMaxAgeは即時削除を意味するため。
	cfg.SessionMaxAge = max(getEnvInt("SESSION_MAX_AGE", 0), 0)
	cfg.SessionCleanupInterval = getEnvDuration("SESSION_CLEANUP_INTERVAL", time.Hour)
	cfg.RateLimitGeneral = getEnvInt("RATE_LIMIT_GENERAL", 120)
	cfg.RateLimitLogin = getEnvInt("RATE_LIMIT_LOGIN", 10)
	cfg.LogLevel = getEnvString("LOG_LEVEL", "info")
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.CookieSecure = getEnvBool("COOKIE_SECURE", true)
	cfg.CookieDomain = getEnvString("COOKIE_DOMAIN", "")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "")
	cfg.CSRFEnabled = getEnvBool("CSRF_ENABLED", false)

	if cfg.RateLimitGeneral <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_GENERAL must be positive: %d", cfg.RateLimitGeneral)
	}
	if cfg.RateLimitLogin <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_LOGIN must be positive: %d", cfg.RateLimitLogin)
	}
	if cfg.SessionCleanupInterval <= 0 {
		return nil, fmt.Errorf("SESSION_CLEANUP_INTERVAL must be positive: %v", cfg.SessionCleanupInterval)
	}

	return cfg, nil
}

// SessionMaxAgeDuration はSessionMaxAgeをtime.Durationで返す。
func (c *Config) SessionMaxAgeDuration() time.Duration {
	return time.Duration(c.SessionMaxAge) * time.Second
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
