package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the service configuration, populated from environment
// variables (HIRELENS_ prefix) with sane local defaults.
type Config struct {
	HTTPPort  string `mapstructure:"http_port"`
	MongoURI  string `mapstructure:"mongo_uri"`
	MongoDB   string `mapstructure:"mongo_db"`
	RedisAddr string `mapstructure:"redis_addr"`
	AuthToken string `mapstructure:"auth_token"`

	LogJSON  bool `mapstructure:"log_json"`
	LogDebug bool `mapstructure:"log_debug"`

	// MaxQuestions caps technical questions per interview.
	MaxQuestions int `mapstructure:"max_questions"`

	// EmptySessionHonesty overrides the fail-open integrity default for
	// sessions with no answers.
	EmptySessionHonesty float64 `mapstructure:"empty_session_honesty"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("hirelens")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_port", "8080")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_db", "hirelens")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("auth_token", "")
	v.SetDefault("log_json", false)
	v.SetDefault("log_debug", false)
	v.SetDefault("max_questions", 5)
	v.SetDefault("empty_session_honesty", 1.0)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.EmptySessionHonesty < 0 || cfg.EmptySessionHonesty > 1 {
		return nil, fmt.Errorf("empty_session_honesty must be in [0,1], got %v", cfg.EmptySessionHonesty)
	}

	return &cfg, nil
}
