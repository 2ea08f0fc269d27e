package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Supabase  SupabaseConfig
	Redis     RedisConfig
	CacheTTLs CacheTTLConfig
	Logger    LoggerConfig
	Jotoba    JotobaConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// SupabaseConfig holds the connection settings for the hosted store.
// Table names are configurable so staging projects can point the same
// binary at copies of the data.
type SupabaseConfig struct {
	URL           string
	ServiceKey    string
	PointsTable   string
	ExamplesTable string
	LevelsTable   string
	VocabTable    string
	JotobaTable   string
	Timeout       time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// CacheTTLConfig carries cache lifetimes as duration strings
// (e.g. "6h", "15m") so they can live in YAML and env vars.
type CacheTTLConfig struct {
	Levels  string
	Grammar string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type JotobaConfig struct {
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		// For test environment, look for config in the project root
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		// For production/development environment
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8001)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("supabase.points_table", "grammar_points")
	viper.SetDefault("supabase.examples_table", "examples")
	viper.SetDefault("supabase.levels_table", "levels")
	viper.SetDefault("supabase.vocab_table", "vocab")
	viper.SetDefault("supabase.jotoba_table", "jotoba_entries")
	viper.SetDefault("supabase.timeout", 10)
	viper.SetDefault("cache_ttls.levels", "6h")
	viper.SetDefault("cache_ttls.grammar", "15m")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("jotoba.base_url", "https://jotoba.de")
	viper.SetDefault("jotoba.timeout", 15)

	// Deployments driven purely by environment variables carry no
	// config file; only a malformed file is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Supabase: SupabaseConfig{
			URL:           viper.GetString("supabase.url"),
			ServiceKey:    viper.GetString("supabase.service_key"),
			PointsTable:   viper.GetString("supabase.points_table"),
			ExamplesTable: viper.GetString("supabase.examples_table"),
			LevelsTable:   viper.GetString("supabase.levels_table"),
			VocabTable:    viper.GetString("supabase.vocab_table"),
			JotobaTable:   viper.GetString("supabase.jotoba_table"),
			Timeout:       viper.GetDuration("supabase.timeout") * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		CacheTTLs: CacheTTLConfig{
			Levels:  viper.GetString("cache_ttls.levels"),
			Grammar: viper.GetString("cache_ttls.grammar"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Jotoba: JotobaConfig{
			BaseURL: viper.GetString("jotoba.base_url"),
			Timeout: viper.GetDuration("jotoba.timeout") * time.Second,
		},
	}

	// Override with environment variables if set. The names match the
	// original deployment environment.
	if u := os.Getenv("SUPABASE_URL"); u != "" {
		config.Supabase.URL = u
	}
	if key := os.Getenv("SUPABASE_SERVICE_ROLE"); key != "" {
		config.Supabase.ServiceKey = key
	}
	if table := os.Getenv("POINTS_TABLE"); table != "" {
		config.Supabase.PointsTable = table
	}
	if table := os.Getenv("EXAMPLES_TABLE"); table != "" {
		config.Supabase.ExamplesTable = table
	}
	if table := os.Getenv("LEVELS_TABLE"); table != "" {
		config.Supabase.LevelsTable = table
	}
	if table := os.Getenv("VOCAB_TABLE"); table != "" {
		config.Supabase.VocabTable = table
	}
	if table := os.Getenv("JOTOBA_TABLE"); table != "" {
		config.Supabase.JotobaTable = table
	}
	if port := os.Getenv("PORT"); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil {
			config.Server.Port = parsed
		}
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if base := os.Getenv("JOTOBA_BASE_URL"); base != "" {
		config.Jotoba.BaseURL = base
	}

	return config, nil
}

// ParseTTLStringOrDefault parses a duration string from configuration,
// falling back to def when the value is empty or malformed.
func (c *Config) ParseTTLStringOrDefault(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}
