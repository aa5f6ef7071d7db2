package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Resume Roast specifics
	OpenAI   OpenAIConfig
	Database DatabaseConfig
	Memory   MemoryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OpenAIConfig holds the chat completion gateway settings. APIVersion and
// Deployment switch the client into Azure routing; leave them empty for the
// plain OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey            string
	Endpoint          string
	APIVersion        string
	Deployment        string
	MaxTokens         int
	Temperature       float64
	RequestsPerMinute int
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type MemoryConfig struct {
	RefreshInterval time.Duration
	SnapshotLimit   int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenAI gateway
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Endpoint = viper.GetString("openai.endpoint")
	cfg.OpenAI.APIVersion = viper.GetString("openai.api_version")
	cfg.OpenAI.Deployment = viper.GetString("openai.deployment")
	cfg.OpenAI.MaxTokens = viper.GetInt("openai.max_tokens")
	cfg.OpenAI.Temperature = viper.GetFloat64("openai.temperature")
	cfg.OpenAI.RequestsPerMinute = viper.GetInt("openai.requests_per_minute")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	if endpoint := viper.GetString("openai_endpoint"); endpoint != "" {
		cfg.OpenAI.Endpoint = endpoint
	}

	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai api key is not configured - set openai.api_key in config.yaml or OPENAI_API_KEY")
	}

	// Database
	cfg.Database.URL = viper.GetString("database.url")
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = viper.GetDuration("database.conn_max_lifetime")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.URL = dbURL
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database url is not configured - set database.url in config.yaml or DATABASE_URL")
	}

	// Memory aggregation
	cfg.Memory.RefreshInterval = viper.GetDuration("memory.refresh_interval")
	cfg.Memory.SnapshotLimit = viper.GetInt("memory.snapshot_limit")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// OpenAI defaults
	viper.SetDefault("openai.endpoint", "https://api.openai.com/v1")
	viper.SetDefault("openai.max_tokens", 4000)
	viper.SetDefault("openai.temperature", 0.7)
	viper.SetDefault("openai.requests_per_minute", 60)

	// Database defaults
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "30m")

	// Memory defaults
	viper.SetDefault("memory.refresh_interval", "30s")
	viper.SetDefault("memory.snapshot_limit", 10)
}
