// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type ServerConfig struct {
	Port           int           `yaml:"port"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type RazorpayConfig struct {
	KeyID     string        `yaml:"key_id"`
	KeySecret string        `yaml:"key_secret"`
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"` // bound on upstream calls
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Razorpay RazorpayConfig `yaml:"razorpay"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	// Optional .env next to the binary; real env always wins.
	_ = godotenv.Load()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// The credential pair can stay out of the file entirely.
	if v := os.Getenv("RAZORPAY_KEY_ID"); v != "" {
		cfg.Razorpay.KeyID = v
	}
	if v := os.Getenv("RAZORPAY_KEY_SECRET"); v != "" {
		cfg.Razorpay.KeySecret = v
	}

	// defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = 15 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Razorpay.BaseURL == "" {
		cfg.Razorpay.BaseURL = "https://api.razorpay.com"
	}
	if cfg.Razorpay.Timeout <= 0 {
		cfg.Razorpay.Timeout = 10 * time.Second
	}

	// Fail fast: serving without the credential pair would mean signing and
	// authenticating with undefined values.
	if cfg.Razorpay.KeyID == "" {
		return nil, errors.New("razorpay.key_id is required")
	}
	if cfg.Razorpay.KeySecret == "" {
		return nil, errors.New("razorpay.key_secret is required")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
