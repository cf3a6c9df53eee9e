// Package config loads service configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level service configuration.
type Config struct {
	Port           string `yaml:"port"`
	MongoURI       string `yaml:"mongo_uri"`
	MongoDatabase  string `yaml:"mongo_database"`
	RedisAddr      string `yaml:"redis_addr"`
	WhatsAppNumber string `yaml:"whatsapp_number"` // international format, no plus sign
}

// DefaultConfig returns a Config with local-development defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           "8080",
		MongoURI:       "mongodb://localhost:27017",
		MongoDatabase:  "qobouli",
		RedisAddr:      "localhost:6379",
		WhatsAppNumber: "905000000000",
	}
}

// Load reads the config file at path (missing file means defaults), then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	overrideEnv(&cfg.Port, "PORT")
	overrideEnv(&cfg.MongoURI, "MONGO_URI")
	overrideEnv(&cfg.MongoDatabase, "MONGO_DATABASE")
	overrideEnv(&cfg.RedisAddr, "REDIS_URI")
	overrideEnv(&cfg.WhatsAppNumber, "WHATSAPP_NUMBER")

	// Remove redis:// prefix if present
	if len(cfg.RedisAddr) > 8 && cfg.RedisAddr[:8] == "redis://" {
		cfg.RedisAddr = cfg.RedisAddr[8:]
	}

	return cfg, nil
}

func overrideEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
