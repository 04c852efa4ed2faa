package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the gateway.
type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Locale   LocaleConfig
	Session  SessionConfig
	Routes   RouteConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Logger   LoggerConfig
	Notify   NotifyConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// UpstreamConfig points at the remote content API.
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// LocaleConfig lists the locales the gateway routes under.
type LocaleConfig struct {
	Supported []string
	Default   string
}

// SessionConfig defines credential cookie parameters.
type SessionConfig struct {
	TokenCookie    string
	RememberCookie string
	UserCookie     string
	JWTSecret      string
	RememberDays   int
	SecureCookies  bool
}

// RouteConfig carries the protected and auth-only route prefixes
// evaluated by the route guard after locale stripping.
type RouteConfig struct {
	ProtectedPrefixes []string
	AuthOnlyPrefixes  []string
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level  string
	Format string
}

// NotifyConfig controls toast notification lifetime.
type NotifyConfig struct {
	ToastTTLSeconds int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "content-gateway"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getEnv("UPSTREAM_BASE_URL", "https://api.medref.example"),
			TimeoutSeconds: getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 15),
		},
		Locale: LocaleConfig{
			Supported: getEnvAsList("LOCALES", "en,ar"),
			Default:   getEnv("DEFAULT_LOCALE", "en"),
		},
		Session: SessionConfig{
			TokenCookie:    getEnv("SESSION_TOKEN_COOKIE", "medref_token"),
			RememberCookie: getEnv("SESSION_REMEMBER_COOKIE", "medref_remember"),
			UserCookie:     getEnv("SESSION_USER_COOKIE", "medref_user"),
			JWTSecret:      getEnv("SESSION_JWT_SECRET", "dev-secret"),
			RememberDays:   getEnvAsInt("SESSION_REMEMBER_DAYS", 30),
			SecureCookies:  getEnvAsBool("SESSION_SECURE_COOKIES", false),
		},
		Routes: RouteConfig{
			ProtectedPrefixes: getEnvAsList("ROUTES_PROTECTED", "/mcqs,/flashcards,/bookmarks"),
			AuthOnlyPrefixes:  getEnvAsList("ROUTES_AUTH_ONLY", "/login,/register"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Notify: NotifyConfig{
			ToastTTLSeconds: getEnvAsInt("NOTIFY_TOAST_TTL_SECONDS", 5),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the upstream HTTP client timeout.
func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// ToastTTL returns the toast auto-dismiss duration.
func (n NotifyConfig) ToastTTL() time.Duration {
	if n.ToastTTLSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(n.ToastTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key, fallback string) []string {
	val := os.Getenv(key)
	if val == "" {
		val = fallback
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
