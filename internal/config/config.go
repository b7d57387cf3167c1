package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// This file defines the configuration structures used by viper_config.go
// The actual loading is handled by viper in viper_config.go

// Config is the complete ygodeck configuration
type Config struct {
	Server  ServerSettings  `mapstructure:"server" yaml:"server"`
	Catalog CatalogSettings `mapstructure:"catalog" yaml:"catalog"`
	Images  ImageSettings   `mapstructure:"images" yaml:"images"`
	Storage StorageSettings `mapstructure:"storage" yaml:"storage"`
	Log     LogSettings     `mapstructure:"log" yaml:"log"`
}

// ServerSettings configures the local web UI
type ServerSettings struct {
	Port            string        `mapstructure:"port" yaml:"port"`
	Host            string        `mapstructure:"host" yaml:"host"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout" yaml:"readTimeout"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout" yaml:"writeTimeout"` // 0 for SSE support
	IdleTimeout     time.Duration `mapstructure:"idleTimeout" yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`
	RequestTimeout  time.Duration `mapstructure:"requestTimeout" yaml:"requestTimeout"` // regular requests, not SSE
	MaxRequestSize  int64         `mapstructure:"maxRequestSize" yaml:"maxRequestSize"`

	// Per-client limiting of the web UI (golang.org/x/time/rate)
	RateLimit      float64 `mapstructure:"rateLimit" yaml:"rateLimit"` // requests per second
	RateLimitBurst int     `mapstructure:"rateLimitBurst" yaml:"rateLimitBurst"`
}

// CatalogSettings configures the card catalog client
type CatalogSettings struct {
	BaseURL        string        `mapstructure:"baseURL" yaml:"baseURL"`
	Timeout        time.Duration `mapstructure:"timeout" yaml:"timeout"`
	RateLimit      float64       `mapstructure:"rateLimit" yaml:"rateLimit"` // requests per second
	RateLimitBurst int           `mapstructure:"rateLimitBurst" yaml:"rateLimitBurst"`
	UserAgent      string        `mapstructure:"userAgent" yaml:"userAgent"`
}

// ImageSettings configures the artwork downloader
type ImageSettings struct {
	Workers          int           `mapstructure:"workers" yaml:"workers"`
	ConfirmThreshold int           `mapstructure:"confirmThreshold" yaml:"confirmThreshold"`
	Timeout          time.Duration `mapstructure:"timeout" yaml:"timeout"`
	RateLimit        float64       `mapstructure:"rateLimit" yaml:"rateLimit"` // 0 disables limiting
}

// StorageSettings selects where decks are kept
type StorageSettings struct {
	Backend string `mapstructure:"backend" yaml:"backend"` // memory, file or sqlite
	Path    string `mapstructure:"path" yaml:"path"`
}

// LogSettings configures the standard logger
type LogSettings struct {
	Format string `mapstructure:"format" yaml:"format"` // text or short
}

// MaxWorkers bounds the image download pool
const MaxWorkers = 3

// DefaultUserAgent identifies ygodeck to upstream hosts
const DefaultUserAgent = "ygodeck/1.0 (+https://db.ygoprodeck.com/api-guide/)"

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Port:            "8080",
			Host:            "127.0.0.1",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    0,
			IdleTimeout:     0,
			ShutdownTimeout: 30 * time.Second,
			RequestTimeout:  60 * time.Second,
			MaxRequestSize:  1048576, // 1MB
			RateLimit:       20,
			RateLimitBurst:  40,
		},
		Catalog: CatalogSettings{
			BaseURL:        "https://db.ygoprodeck.com/api/v7",
			Timeout:        30 * time.Second,
			RateLimit:      10,
			RateLimitBurst: 4,
			UserAgent:      DefaultUserAgent,
		},
		Images: ImageSettings{
			Workers:          3,
			ConfirmThreshold: 10,
			Timeout:          30 * time.Second,
		},
		Storage: StorageSettings{
			Backend: "file",
		},
		Log: LogSettings{
			Format: "text",
		},
	}
}

// DefaultStoragePath is where decks live when storage.path is not set
func DefaultStoragePath(backend string) string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".local", "share")
	}
	name := "decks.json"
	if backend == "sqlite" {
		name = "decks.db"
	}
	return filepath.Join(dir, "ygodeck", name)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port must be set")
	}
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.baseURL must be set")
	}
	if c.Catalog.RateLimit < 0 || c.Images.RateLimit < 0 {
		return fmt.Errorf("rate limits cannot be negative")
	}
	if c.Images.Workers < 1 {
		return fmt.Errorf("images.workers must be at least 1")
	}
	if c.Images.ConfirmThreshold < 0 {
		return fmt.Errorf("images.confirmThreshold cannot be negative")
	}

	// Cap the pool to stay polite to the image host
	if c.Images.Workers > MaxWorkers {
		c.Images.Workers = MaxWorkers
	}

	switch c.Storage.Backend {
	case "memory":
	case "file", "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path must be set for the %s backend", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	switch c.Log.Format {
	case "text", "short":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	return nil
}

// Addr is the listen address of the web UI
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
