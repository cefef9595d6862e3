package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the variables this service reads. A double
// underscore separates nesting levels, so PEOPLEDIR_DB__HOST sets db.host.
const envPrefix = "PEOPLEDIR_"

type Config struct {
	Env      string         `koanf:"env"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"db"`
	API      APIConfig      `koanf:"api"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Port         int    `koanf:"port" validate:"required,min=1,max=65535"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout int    `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"min=1"`
	CORSOrigins  string `koanf:"cors_origins" validate:"required"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required,min=1,max=65535"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"required"`
	MaxConns int32  `koanf:"max_conns" validate:"min=1"`
	MinConns int32  `koanf:"min_conns" validate:"min=0"`
}

type APIConfig struct {
	DefaultPerPage int `koanf:"default_per_page" validate:"min=1"`
	MaxPerPage     int `koanf:"max_per_page" validate:"min=1"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"required"`
}

// Load reads configuration from the environment on top of the defaults
// below and validates the result. A .env file in the working directory is
// picked up automatically for local development.
func Load() (*Config, error) {
	k := koanf.New(".")

	provider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Env: "local",
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  10,
			WriteTimeout: 30,
			IdleTimeout:  60,
			CORSOrigins:  "*",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			SSLMode:  "disable",
			MaxConns: 25,
			MinConns: 2,
		},
		API: APIConfig{
			DefaultPerPage: 10,
			MaxPerPage:     100,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
