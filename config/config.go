package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
)

type Config struct {
	// Server
	Port           string
	Host           string
	GinMode        string
	LogLevel       string
	AllowedOrigins string

	// Brand dataset
	DatasetPath      string
	DatasetPreload   bool
	LookupSampleSize int

	// Gemini
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration

	// Suggestions
	FallbackDelay                 time.Duration
	SuggestionsRateLimitPerMinute int
}

func Load() *Config {
	return &Config{
		Port:                          getEnv("PORT", "8080"),
		Host:                          getEnv("HOST", "0.0.0.0"),
		GinMode:                       getEnvGinMode("GIN_MODE"),
		LogLevel:                      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		AllowedOrigins:                getEnv("ALLOWED_ORIGINS", "*"),
		DatasetPath:                   getEnv("DATASET_PATH", "data/brands.json"),
		DatasetPreload:                getEnvBool("DATASET_PRELOAD", true),
		LookupSampleSize:              getEnvInt("LOOKUP_SAMPLE_SIZE", 10),
		GeminiAPIKey:                  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:                   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiTimeout:                 getEnvDuration("GEMINI_TIMEOUT", 20*time.Second),
		FallbackDelay:                 getEnvDuration("SUGGESTIONS_FALLBACK_DELAY", 1500*time.Millisecond),
		SuggestionsRateLimitPerMinute: getEnvInt("SUGGESTIONS_RATE_LIMIT_PER_MINUTE", 0),
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		log.Warnf("Invalid %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("Invalid %s=%q, using default %t", key, value, defaultValue)
		return defaultValue
	}
	return b
}

// getEnvGinMode returns the gin mode from key, or "" when unset or unknown so
// the caller can derive it from the log level.
func getEnvGinMode(key string) string {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case "":
		return ""
	case "debug", "release", "test":
		return value
	}
	log.Warnf("Invalid %s=%q, ignoring", key, value)
	return ""
}

// getEnvDuration parses Go duration strings ("1.5s", "1500ms"). A bare number
// has no unit and is rejected.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Warnf("Invalid %s=%q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
