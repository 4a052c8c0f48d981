package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Identity   IdentityConfig   `mapstructure:"identity"`
	Backend    BackendConfig    `mapstructure:"backend"`
	Encryption EncryptionConfig `mapstructure:"encryption"`
	Meta       MetaConfig       `mapstructure:"meta"`
	ElevenLabs ElevenLabsConfig `mapstructure:"elevenlabs"`
	Canva      CanvaConfig      `mapstructure:"canva"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Security   SecurityConfig   `mapstructure:"security"`
	Render     RenderConfig     `mapstructure:"render"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IdentityConfig points at the external identity provider that owns login
// sessions. When URL or APIKey is empty, every protected route answers 503.
type IdentityConfig struct {
	URL        string        `mapstructure:"url"`
	APIKey     string        `mapstructure:"api_key"`
	CookieName string        `mapstructure:"cookie_name"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// BackendConfig points at the external application server that requests
// are proxied to.
type BackendConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	DashboardURL string        `mapstructure:"dashboard_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type EncryptionConfig struct {
	Key string `mapstructure:"key"`
}

type MetaConfig struct {
	AppSecret    string `mapstructure:"app_secret"`
	GraphVersion string `mapstructure:"graph_version"`
}

type ElevenLabsConfig struct {
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	DefaultVoiceID string `mapstructure:"default_voice_id"`
}

type CanvaConfig struct {
	Token   string `mapstructure:"token"`
	BaseURL string `mapstructure:"base_url"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	PublicURL string `mapstructure:"public_url"`
}

type SecurityConfig struct {
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

type RenderConfig struct {
	CacheSize int `mapstructure:"cache_size"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.request_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "15s")

	// Database
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "buzzdeck")
	v.SetDefault("database.database", "buzzdeck")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	// Identity provider
	v.SetDefault("identity.cookie_name", "bd-access-token")
	v.SetDefault("identity.timeout", "10s")

	// Backend
	v.SetDefault("backend.dashboard_url", "/dashboard")
	v.SetDefault("backend.timeout", "30s")

	// Meta
	v.SetDefault("meta.graph_version", "v25.0")

	// ElevenLabs
	v.SetDefault("elevenlabs.base_url", "https://api.elevenlabs.io")

	// Canva
	v.SetDefault("canva.base_url", "https://api.canva.com")

	// Gemini
	v.SetDefault("gemini.model", "gemini-2.5-flash")

	// Storage
	v.SetDefault("storage.bucket", "buzzdeck-media")
	v.SetDefault("storage.use_ssl", true)

	// Security
	v.SetDefault("security.rate_limit.requests_per_minute", 60)
	v.SetDefault("security.rate_limit.burst", 10)

	// Render
	v.SetDefault("render.cache_size", 100)

	// Logging
	v.SetDefault("logging.level", "info")
}

func bindEnvVars(v *viper.Viper) {
	// Database
	v.BindEnv("database.password", "POSTGRES_PASSWORD")

	// Redis
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Identity provider
	v.BindEnv("identity.url", "IDENTITY_URL")
	v.BindEnv("identity.api_key", "IDENTITY_API_KEY")

	// Backend
	v.BindEnv("backend.base_url", "BACKEND_BASE_URL")
	v.BindEnv("backend.dashboard_url", "DASHBOARD_URL")

	// Secrets
	v.BindEnv("encryption.key", "ENCRYPTION_KEY")
	v.BindEnv("meta.app_secret", "META_APP_SECRET")
	v.BindEnv("elevenlabs.api_key", "ELEVENLABS_API_KEY")
	v.BindEnv("canva.token", "CANVA_TOKEN")
	v.BindEnv("gemini.api_key", "GEMINI_API_KEY")

	// Storage
	v.BindEnv("storage.endpoint", "STORAGE_ENDPOINT")
	v.BindEnv("storage.access_key", "STORAGE_ACCESS_KEY")
	v.BindEnv("storage.secret_key", "STORAGE_SECRET_KEY")
	v.BindEnv("storage.public_url", "STORAGE_PUBLIC_URL")
}
