// Package config provides environment-based configuration management
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sentsei/internal/models"
	"sentsei/internal/types"
)

// Constants for default configuration values
const (
	defaultPort                    = 3001
	defaultHost                    = "0.0.0.0"
	defaultReadTimeout             = 60
	defaultWriteTimeout            = 300
	defaultIdleTimeout             = 120
	defaultGracefulShutdownTimeout = 10

	defaultOllamaURL      = "http://localhost:11434"
	defaultOllamaModel    = "qwen2.5:14b-instruct-q3_K_M"
	defaultLLMTimeout     = 120
	defaultLLMTemperature = 0.3
	defaultLLMMaxTokens   = 2048

	defaultRateLimitRequests = 30
	defaultRateLimitWindow   = 60

	defaultCacheTTLMinutes = 1440
	defaultCacheMaxEntries = 500
)

// Hebrew needs a dedicated model: the default mixes Korean and Thai
// characters into Hebrew output.
var defaultModelOverrides = map[string]string{
	string(models.LangHebrew): "gemma2:9b",
}

// Manager implements types.ConfigManager on top of process environment
// variables, optionally seeded from a .env file.
type Manager struct {
	config *Config
}

// Config holds the complete application configuration
type Config struct {
	Server     types.ServerConfig
	Auth       types.AuthConfig
	CORS       types.CORSConfig
	Log        types.LogConfig
	Database   types.DatabaseConfig
	RedisDSN   string
	LLM        types.LLMConfig
	RateLimit  types.RateLimitConfig
	Cache      types.CacheConfig
	Dictionary types.DictionaryConfig
}

// NewManager creates a configuration manager from the environment.
func NewManager() (types.ConfigManager, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	config := &Config{
		Server: types.ServerConfig{
			Port:                    parseInteger(os.Getenv("PORT"), defaultPort),
			Host:                    getEnvOrDefault("HOST", defaultHost),
			ReadTimeout:             parseInteger(os.Getenv("SERVER_READ_TIMEOUT"), defaultReadTimeout),
			WriteTimeout:            parseInteger(os.Getenv("SERVER_WRITE_TIMEOUT"), defaultWriteTimeout),
			IdleTimeout:             parseInteger(os.Getenv("SERVER_IDLE_TIMEOUT"), defaultIdleTimeout),
			GracefulShutdownTimeout: parseInteger(os.Getenv("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT"), defaultGracefulShutdownTimeout),
			StaticDir:               os.Getenv("STATIC_DIR"),
		},
		Auth: types.AuthConfig{
			Key: os.Getenv("AUTH_KEY"),
		},
		CORS: types.CORSConfig{
			Enabled:          parseBoolean(os.Getenv("ENABLE_CORS"), true),
			AllowedOrigins:   parseArray(os.Getenv("ALLOWED_ORIGINS"), []string{"*"}),
			AllowedMethods:   parseArray(os.Getenv("ALLOWED_METHODS"), []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   parseArray(os.Getenv("ALLOWED_HEADERS"), []string{"*"}),
			AllowCredentials: parseBoolean(os.Getenv("ALLOW_CREDENTIALS"), false),
		},
		Log: types.LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
			EnableFile: parseBoolean(os.Getenv("LOG_ENABLE_FILE"), false),
			FilePath:   getEnvOrDefault("LOG_FILE_PATH", "./data/logs/app.log"),
		},
		Database: types.DatabaseConfig{
			DSN: getEnvOrDefault("DATABASE_DSN", "./data/sentsei.db"),
		},
		RedisDSN: os.Getenv("REDIS_DSN"),
		LLM: types.LLMConfig{
			URL:            getEnvOrDefault("OLLAMA_URL", defaultOllamaURL),
			Model:          getEnvOrDefault("OLLAMA_MODEL", defaultOllamaModel),
			ModelOverrides: parseModelOverrides(os.Getenv("MODEL_OVERRIDES")),
			RequestTimeout: parseInteger(os.Getenv("LLM_REQUEST_TIMEOUT"), defaultLLMTimeout),
			Temperature:    parseFloat(os.Getenv("LLM_TEMPERATURE"), defaultLLMTemperature),
			MaxTokens:      parseInteger(os.Getenv("LLM_MAX_TOKENS"), defaultLLMMaxTokens),
		},
		RateLimit: types.RateLimitConfig{
			Requests:      parseInteger(os.Getenv("RATE_LIMIT_REQUESTS"), defaultRateLimitRequests),
			WindowSeconds: parseInteger(os.Getenv("RATE_LIMIT_WINDOW"), defaultRateLimitWindow),
		},
		Cache: types.CacheConfig{
			TTLMinutes: parseInteger(os.Getenv("CACHE_TTL_MINUTES"), defaultCacheTTLMinutes),
			MaxEntries: parseInteger(os.Getenv("CACHE_MAX_ENTRIES"), defaultCacheMaxEntries),
		},
		Dictionary: types.DictionaryConfig{
			CEDICTPath: os.Getenv("CEDICT_PATH"),
		},
	}

	manager := &Manager{config: config}
	if err := manager.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return manager, nil
}

// Validate checks the configuration for invalid values.
func (m *Manager) Validate() error {
	server := m.config.Server
	if server.Port < 1 || server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", server.Port)
	}
	if server.ReadTimeout < 1 || server.WriteTimeout < 1 || server.IdleTimeout < 1 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if m.config.LLM.URL == "" {
		return fmt.Errorf("OLLAMA_URL cannot be empty")
	}
	if m.config.RateLimit.Requests < 1 || m.config.RateLimit.WindowSeconds < 1 {
		return fmt.Errorf("rate limit requests and window must be positive")
	}
	if m.config.Cache.TTLMinutes < 1 || m.config.Cache.MaxEntries < 1 {
		return fmt.Errorf("cache TTL and max entries must be positive")
	}
	if m.config.CORS.Enabled && len(m.config.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS is enabled but no allowed origins configured")
	}
	return nil
}

// GetAuthConfig returns authentication configuration
func (m *Manager) GetAuthConfig() types.AuthConfig {
	return m.config.Auth
}

// GetCORSConfig returns CORS configuration
func (m *Manager) GetCORSConfig() types.CORSConfig {
	return m.config.CORS
}

// GetLogConfig returns logging configuration
func (m *Manager) GetLogConfig() types.LogConfig {
	return m.config.Log
}

// GetDatabaseConfig returns database configuration
func (m *Manager) GetDatabaseConfig() types.DatabaseConfig {
	return m.config.Database
}

// GetEffectiveServerConfig returns server configuration
func (m *Manager) GetEffectiveServerConfig() types.ServerConfig {
	return m.config.Server
}

// GetRedisDSN returns the Redis connection string, empty for memory storage
func (m *Manager) GetRedisDSN() string {
	return m.config.RedisDSN
}

// GetLLMConfig returns the Ollama endpoint configuration
func (m *Manager) GetLLMConfig() types.LLMConfig {
	return m.config.LLM
}

// GetRateLimitConfig returns the sliding window rate limit configuration
func (m *Manager) GetRateLimitConfig() types.RateLimitConfig {
	return m.config.RateLimit
}

// GetCacheConfig returns the translation cache configuration
func (m *Manager) GetCacheConfig() types.CacheConfig {
	return m.config.Cache
}

// GetDictionaryConfig returns static dictionary asset locations
func (m *Manager) GetDictionaryConfig() types.DictionaryConfig {
	return m.config.Dictionary
}

// DisplayServerConfig logs an overview of the effective configuration.
func (m *Manager) DisplayServerConfig() {
	server := m.config.Server
	storageType := "memory"
	if m.config.RedisDSN != "" {
		storageType = "redis"
	}
	authStatus := "disabled"
	if m.config.Auth.Key != "" {
		authStatus = "enabled"
	}

	logrus.Info("Server configuration:")
	logrus.Infof("  Listen: %s:%d", server.Host, server.Port)
	logrus.Infof("  Auth: %s", authStatus)
	logrus.Infof("  Storage: %s", storageType)
	logrus.Infof("  Database: %s", m.config.Database.DSN)
	logrus.Infof("  Ollama: %s (model %s)", m.config.LLM.URL, m.config.LLM.Model)
	logrus.Infof("  Rate limit: %d req / %ds", m.config.RateLimit.Requests, m.config.RateLimit.WindowSeconds)
	logrus.Infof("  Cache: %d entries, TTL %dm", m.config.Cache.MaxEntries, m.config.Cache.TTLMinutes)
	if m.config.Dictionary.CEDICTPath != "" {
		logrus.Infof("  CEDICT: %s", m.config.Dictionary.CEDICTPath)
	}
}

func getEnvOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func parseInteger(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseFloat(value string, defaultValue float64) float64 {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseBoolean(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseArray(value string, defaultValue []string) []string {
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}

// parseModelOverrides parses "he=gemma2:9b,ko=exaone3.5" style overrides,
// merged over the built-in defaults.
func parseModelOverrides(value string) map[string]string {
	overrides := make(map[string]string, len(defaultModelOverrides))
	for code, model := range defaultModelOverrides {
		overrides[code] = model
	}
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, model, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		model = strings.TrimSpace(model)
		if key == "" || model == "" {
			continue
		}
		overrides[key] = model
	}
	return overrides
}
