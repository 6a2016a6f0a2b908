package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL      string
	HTTPAddress      string
	JWTSecret        string
	TokenTTL         time.Duration
	AllowedOrigins   []string
	AllowCredentials bool
	LogLevel         string
}

// Load reads configuration from the environment, with an optional config.json
// in the working directory for local runs. DATABASE_URL and JWT_SECRET are
// required; everything else has a default.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	for _, key := range []string{
		"DATABASE_URL",
		"JWT_SECRET",
		"TOKEN_TTL",
		"HTTP_ADDRESS",
		"ALLOWED_ORIGINS",
		"ALLOW_CREDENTIALS",
		"LOG_LEVEL",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("TOKEN_TTL", "1h")
	viper.SetDefault("HTTP_ADDRESS", ":3001")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		HTTPAddress:      viper.GetString("HTTP_ADDRESS"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		TokenTTL:         viper.GetDuration("TOKEN_TTL"),
		AllowedOrigins:   viper.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials: viper.GetBool("ALLOW_CREDENTIALS"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}

	return cfg, nil
}
