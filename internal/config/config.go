package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// UpstreamConfig locates the external opportunities API.
type UpstreamConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigin string
}

// Load reads configuration from the environment, with an optional app.env
// file in the working directory taking effect first. Missing keys fall back
// to defaults suitable for local development.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 30)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)
	v.SetDefault("UPSTREAM_BASE_URL", "http://localhost:8000")
	v.SetDefault("UPSTREAM_REQUEST_TIMEOUT", 30)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")

	v.AddConfigPath(".")
	v.SetConfigName("app")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		// The env file is optional; the environment alone is enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	v.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			Host:         v.GetString("SERVER_HOST"),
			Port:         v.GetInt("SERVER_PORT"),
			ReadTimeout:  time.Duration(v.GetInt("SERVER_READ_TIMEOUT")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("SERVER_WRITE_TIMEOUT")) * time.Second,
		},
		Upstream: UpstreamConfig{
			BaseURL:        v.GetString("UPSTREAM_BASE_URL"),
			RequestTimeout: time.Duration(v.GetInt("UPSTREAM_REQUEST_TIMEOUT")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
	}, nil
}
