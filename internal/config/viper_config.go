package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration using Viper
// Priority order: Environment variables > Config file > Defaults
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("ygodeck")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "ygodeck"))
		}
	}

	// YGODECK_SERVER_PORT, YGODECK_CATALOG_BASEURL, ...
	v.SetEnvPrefix("YGODECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Plain PORT and HOST also work
	v.BindEnv("server.port", "YGODECK_SERVER_PORT", "PORT")
	v.BindEnv("server.host", "YGODECK_SERVER_HOST", "HOST")

	setDefaults(v)

	// The config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("📄 Loaded config from %s", v.ConfigFileUsed())
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.Storage.Path == "" && cfg.Storage.Backend != "memory" {
		cfg.Storage.Path = DefaultStoragePath(cfg.Storage.Backend)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.readtimeout", d.Server.ReadTimeout.String())
	v.SetDefault("server.writetimeout", "0s") // 0 for SSE support
	v.SetDefault("server.idletimeout", "0s")
	v.SetDefault("server.shutdowntimeout", d.Server.ShutdownTimeout.String())
	v.SetDefault("server.requesttimeout", d.Server.RequestTimeout.String())
	v.SetDefault("server.maxrequestsize", d.Server.MaxRequestSize)
	v.SetDefault("server.ratelimit", d.Server.RateLimit)
	v.SetDefault("server.ratelimitburst", d.Server.RateLimitBurst)

	v.SetDefault("catalog.baseurl", d.Catalog.BaseURL)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout.String())
	v.SetDefault("catalog.ratelimit", d.Catalog.RateLimit)
	v.SetDefault("catalog.ratelimitburst", d.Catalog.RateLimitBurst)
	v.SetDefault("catalog.useragent", d.Catalog.UserAgent)

	v.SetDefault("images.workers", d.Images.Workers)
	v.SetDefault("images.confirmthreshold", d.Images.ConfirmThreshold)
	v.SetDefault("images.timeout", d.Images.Timeout.String())
	v.SetDefault("images.ratelimit", 0.0)

	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", "")

	v.SetDefault("log.format", d.Log.Format)
}

// ApplyLogFormat configures the standard logger for format
func ApplyLogFormat(format string) {
	switch format {
	case "short":
		log.SetFlags(log.Ltime)
	default:
		log.SetFlags(log.LstdFlags)
	}
}
