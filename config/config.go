package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fenilmodi00/ipo-pulse/shared"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort   string
	DatabaseURL  string
	GeminiAPIKey string

	Settings *shared.UnifiedConfiguration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using system environment variables")
	}

	settings := shared.NewDefaultUnifiedConfiguration()

	settings.Generator.Model = getEnv("GEMINI_MODEL", settings.Generator.Model)
	settings.Generator.JSONMode = getEnvBool("GEMINI_JSON_MODE", settings.Generator.JSONMode)
	settings.Generator.SearchGrounding = getEnvBool("GEMINI_SEARCH_GROUNDING", settings.Generator.SearchGrounding)
	settings.Generator.FetchTimeout = getEnvSeconds("FETCH_TIMEOUT_SECONDS", settings.Generator.FetchTimeout)
	settings.Generator.MinInterval = getEnvMillis("GEMINI_MIN_INTERVAL_MS", settings.Generator.MinInterval)

	settings.Cache.Backend = getEnv("CACHE_BACKEND", settings.Cache.Backend)
	settings.Cache.Path = getEnv("CACHE_PATH", settings.Cache.Path)

	settings.Logging.Level = getEnv("LOG_LEVEL", settings.Logging.Level)
	settings.Logging.Format = getEnv("LOG_FORMAT", settings.Logging.Format)

	settings.ValidateAndApplyDefaults()

	apiKey := getEnv("GEMINI_API_KEY", "")
	if apiKey == "" {
		apiKey = getEnv("API_KEY", "")
	}

	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		GeminiAPIKey: apiKey,
		Settings:     settings,
	}
}

// SetupLogging applies the logging section to the global logrus logger
func SetupLogging(cfg shared.LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Invalid LOG_LEVEL value: %s, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		logrus.Warnf("Invalid %s value: %s, using default %t", key, raw, fallback)
		return fallback
	}
	return value
}

func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		logrus.Warnf("Invalid %s value: %s, using default %v", key, raw, fallback)
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

func getEnvMillis(key string, fallback time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	millis, err := strconv.Atoi(raw)
	if err != nil || millis < 0 {
		logrus.Warnf("Invalid %s value: %s, using default %v", key, raw, fallback)
		return fallback
	}
	return time.Duration(millis) * time.Millisecond
}
