// Package types defines common types used across the application
package types

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetAuthConfig() AuthConfig
	GetCORSConfig() CORSConfig
	GetLogConfig() LogConfig
	GetDatabaseConfig() DatabaseConfig
	GetEffectiveServerConfig() ServerConfig
	GetRedisDSN() string
	GetLLMConfig() LLMConfig
	GetRateLimitConfig() RateLimitConfig
	GetCacheConfig() CacheConfig
	GetDictionaryConfig() DictionaryConfig
	Validate() error
	DisplayServerConfig()
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port                    int    `json:"port"`
	Host                    string `json:"host"`
	ReadTimeout             int    `json:"read_timeout"`
	WriteTimeout            int    `json:"write_timeout"`
	IdleTimeout             int    `json:"idle_timeout"`
	GracefulShutdownTimeout int    `json:"graceful_shutdown_timeout"`
	StaticDir               string `json:"static_dir"`
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Key string `json:"key"`
}

// CORSConfig represents CORS configuration
type CORSConfig struct {
	Enabled          bool     `json:"enabled"`
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level      string `json:"level"`
	Format     string `json:"format"`
	EnableFile bool   `json:"enable_file"`
	FilePath   string `json:"file_path"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	DSN string `json:"dsn"`
}

// LLMConfig represents the Ollama endpoint configuration
type LLMConfig struct {
	URL string `json:"url"`
	// Model is the default chat model; ModelOverrides replaces it per target
	// language code for languages where the default produces garbled output.
	Model          string            `json:"model"`
	ModelOverrides map[string]string `json:"model_overrides"`
	RequestTimeout int               `json:"request_timeout"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens"`
}

// RateLimitConfig represents the per-IP sliding window limit
type RateLimitConfig struct {
	Requests      int `json:"requests"`
	WindowSeconds int `json:"window_seconds"`
}

// CacheConfig represents the translation cache configuration
type CacheConfig struct {
	TTLMinutes int `json:"ttl_minutes"`
	MaxEntries int `json:"max_entries"`
}

// DictionaryConfig represents static dictionary asset locations
type DictionaryConfig struct {
	CEDICTPath string `json:"cedict_path"`
}
