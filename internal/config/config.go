package config

import (
	"os"
	"strconv"
	"strings"
)

// Connector kinds accepted in OSU_API_CONNECTOR.
const (
	ConnectorSync       = "sync"
	ConnectorConcurrent = "concurrent"
)

// OsuAPIConfig holds the settings of the upstream osu! API client.
type OsuAPIConfig struct {
	Key         string
	BaseURL     string
	TimeoutSec  int
	Connector   string
	MaxInFlight int
	UserAgent   string
}

// AppConfig is the centralized configuration struct for the gateway.
// It is populated from environment variables. The API key is never hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	OpenDocs bool
	OsuAPI   OsuAPIConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		OpenDocs: getEnvBool("GATEWAY_OPEN_DOCS", false),
		OsuAPI: OsuAPIConfig{
			Key:         getEnv("OSU_API_KEY", ""),
			BaseURL:     getEnv("OSU_API_BASE_URL", "https://osu.ppy.sh"),
			TimeoutSec:  getEnvInt("OSU_API_TIMEOUT_SEC", 10),
			Connector:   getEnvOneOf("OSU_API_CONNECTOR", ConnectorConcurrent, ConnectorSync, ConnectorConcurrent),
			MaxInFlight: getEnvInt("OSU_API_MAX_IN_FLIGHT", 8),
			UserAgent:   getEnv("OSU_API_USER_AGENT", "osuapi-gateway"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvOneOf returns the lower-cased value of key if it is one of allowed.
func getEnvOneOf(key, def string, allowed ...string) string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return def
}
