package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const minSecretLength = 32

type JWTConfig struct {
	SecretKey       string
	TokenExpiration time.Duration
	CookieSecure    bool
	DevTokens       bool
}

type RoutesConfig struct {
	LoginPath          string
	LogoutRedirectPath string
}

type ObservabilityConfig struct {
	ServiceName  string
	OTLPEndpoint string
	MetricsAddr  string
	PprofAddr    string
	LogLevel     string
}

type Config struct {
	JWT           JWTConfig
	Routes        RoutesConfig
	Observability ObservabilityConfig
	ServerPort    string
}

func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnvOrDefault("JWT_TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		JWT: JWTConfig{
			SecretKey:       os.Getenv("JWT_SECRET_KEY"),
			TokenExpiration: ttl,
			CookieSecure:    getBoolOrDefault("AUTH_COOKIE_SECURE", false),
			DevTokens:       getBoolOrDefault("AUTH_DEV_TOKENS", false),
		},
		Routes: RoutesConfig{
			LoginPath:          getEnvOrDefault("LOGIN_PATH", "/login"),
			LogoutRedirectPath: getEnvOrDefault("LOGOUT_REDIRECT_PATH", "/dashboard"),
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("SERVICE_NAME", "go-dashboard"),
			OTLPEndpoint: getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4318"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			PprofAddr:    getEnvOrDefault("PPROF_ADDR", ":6060"),
			LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		},
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
	}

	if len(cfg.JWT.SecretKey) < minSecretLength {
		return nil, fmt.Errorf("JWT_SECRET_KEY must be at least %d characters", minSecretLength)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
