package config

import (
	"sentsei/internal/types"
)

// MockConfig implements types.ConfigManager for testing
type MockConfig struct {
	AuthKeyValue string
	RedisDSN     string
}

// GetAuthConfig returns mock auth configuration
func (m *MockConfig) GetAuthConfig() types.AuthConfig {
	return types.AuthConfig{
		Key: m.AuthKeyValue,
	}
}

// GetCORSConfig returns mock CORS configuration
func (m *MockConfig) GetCORSConfig() types.CORSConfig {
	return types.CORSConfig{
		Enabled:          false,
		AllowedOrigins:   []string{},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}
}

// GetLogConfig returns mock log configuration
func (m *MockConfig) GetLogConfig() types.LogConfig {
	return types.LogConfig{
		Level:      "info",
		Format:     "text",
		EnableFile: false,
		FilePath:   "./data/logs/app.log",
	}
}

// GetDatabaseConfig returns mock database configuration
func (m *MockConfig) GetDatabaseConfig() types.DatabaseConfig {
	return types.DatabaseConfig{
		DSN: ":memory:",
	}
}

// GetEffectiveServerConfig returns mock server configuration
func (m *MockConfig) GetEffectiveServerConfig() types.ServerConfig {
	return types.ServerConfig{
		Port:                    3001,
		Host:                    "0.0.0.0",
		ReadTimeout:             60,
		WriteTimeout:            300,
		IdleTimeout:             120,
		GracefulShutdownTimeout: 10,
	}
}

// GetRedisDSN returns mock Redis DSN
func (m *MockConfig) GetRedisDSN() string {
	return m.RedisDSN
}

// GetLLMConfig returns mock LLM configuration
func (m *MockConfig) GetLLMConfig() types.LLMConfig {
	return types.LLMConfig{
		URL:            "http://localhost:11434",
		Model:          "qwen2.5:14b-instruct-q3_K_M",
		ModelOverrides: map[string]string{"he": "gemma2:9b"},
		RequestTimeout: 120,
		Temperature:    0.3,
		MaxTokens:      2048,
	}
}

// GetRateLimitConfig returns mock rate limit configuration
func (m *MockConfig) GetRateLimitConfig() types.RateLimitConfig {
	return types.RateLimitConfig{
		Requests:      30,
		WindowSeconds: 60,
	}
}

// GetCacheConfig returns mock cache configuration
func (m *MockConfig) GetCacheConfig() types.CacheConfig {
	return types.CacheConfig{
		TTLMinutes: 1440,
		MaxEntries: 500,
	}
}

// GetDictionaryConfig returns mock dictionary configuration
func (m *MockConfig) GetDictionaryConfig() types.DictionaryConfig {
	return types.DictionaryConfig{}
}

// Validate validates the configuration
func (m *MockConfig) Validate() error {
	return nil
}

// DisplayServerConfig displays server configuration (no-op for mock)
func (m *MockConfig) DisplayServerConfig() {
	// No-op for testing
}
