package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `json:"server" mapstructure:"server"`
	Database DatabaseConfig `json:"database" mapstructure:"database"`
	LLM      LLMConfig      `json:"llm" mapstructure:"llm"`
	CORS     CORSConfig     `json:"cors" mapstructure:"cors"`
}

type ServerConfig struct {
	Host string `json:"host" mapstructure:"host"`
	Port int    `json:"port" mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	User     string `json:"user" mapstructure:"user"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
	SSLMode  string `json:"sslmode" mapstructure:"sslmode"`
}

// LLMConfig configures the language-model collaborator. An empty APIKey
// means the assistant runs without a model and answers from the keyword
// fallback instead.
type LLMConfig struct {
	APIKey         string `json:"api_key" mapstructure:"api_key"`
	BaseURL        string `json:"base_url,omitempty" mapstructure:"base_url"`
	Model          string `json:"model" mapstructure:"model"`
	MaxTokens      int    `json:"max_tokens" mapstructure:"max_tokens"`
	TimeoutSeconds int    `json:"timeout_seconds" mapstructure:"timeout_seconds"`
}

type CORSConfig struct {
	Origins string `json:"origins" mapstructure:"origins"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	// Add config paths
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Check for user config directory
	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".voyago"))
	}

	// Set defaults
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "voyago")
	viper.SetDefault("database.database", "voyago_travel")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.max_tokens", 500)
	viper.SetDefault("llm.timeout_seconds", 30)
	viper.SetDefault("cors.origins", "http://localhost:3000,http://localhost:5173")

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			cfg := defaultConfig()
			loadEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Load environment variables
	loadEnvOverrides(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "voyago",
			Password: "",
			Database: "voyago_travel",
			SSLMode:  "disable",
		},
		LLM: LLMConfig{
			Model:          "gpt-4o-mini",
			MaxTokens:      500,
			TimeoutSeconds: 30,
		},
		CORS: CORSConfig{
			Origins: "http://localhost:3000,http://localhost:5173",
		},
	}
}

func loadEnvOverrides(cfg *Config) {
	// Override with environment variables
	if port := os.Getenv("VOYAGO_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	if host := os.Getenv("VOYAGO_HOST"); host != "" {
		cfg.Server.Host = host
	}

	// Database overrides
	if dbHost := os.Getenv("POSTGRES_HOST"); dbHost != "" {
		cfg.Database.Host = dbHost
	}
	if dbPort := os.Getenv("POSTGRES_PORT"); dbPort != "" {
		if port, err := strconv.Atoi(dbPort); err == nil {
			cfg.Database.Port = port
		}
	}
	if dbUser := os.Getenv("POSTGRES_USER"); dbUser != "" {
		cfg.Database.User = dbUser
	}
	if dbPass := os.Getenv("POSTGRES_PASSWORD"); dbPass != "" {
		cfg.Database.Password = dbPass
	}
	if dbName := os.Getenv("POSTGRES_DB"); dbName != "" {
		cfg.Database.Database = dbName
	}

	// LLM overrides
	if key := os.Getenv("VOYAGO_LLM_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}
	if baseURL := os.Getenv("VOYAGO_LLM_BASE_URL"); baseURL != "" {
		cfg.LLM.BaseURL = baseURL
	}
	if model := os.Getenv("VOYAGO_LLM_MODEL"); model != "" {
		cfg.LLM.Model = model
	}

	if origins := os.Getenv("VOYAGO_CORS_ORIGINS"); origins != "" {
		cfg.CORS.Origins = origins
	}
}
