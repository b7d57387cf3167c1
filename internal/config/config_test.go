package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv keeps the host environment out of LoadConfig
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "HOST", "XDG_DATA_HOME", "XDG_CONFIG_HOME"} {
		t.Setenv(key, "")
	}
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "YGODECK_") {
			t.Setenv(name, "")
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("LoadDefaultWhenMissing", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("XDG_DATA_HOME", "/data")

		config, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if config.Server.Port != "8080" || config.Server.Host != "127.0.0.1" {
			t.Errorf("expected 127.0.0.1:8080, got %s", config.Addr())
		}
		if config.Catalog.BaseURL != "https://db.ygoprodeck.com/api/v7" {
			t.Errorf("unexpected base URL %q", config.Catalog.BaseURL)
		}
		if config.Catalog.Timeout != 30*time.Second {
			t.Errorf("expected catalog timeout 30s, got %v", config.Catalog.Timeout)
		}
		if config.Images.Workers != 3 || config.Images.ConfirmThreshold != 10 {
			t.Errorf("expected 3 workers / threshold 10, got %d / %d", config.Images.Workers, config.Images.ConfirmThreshold)
		}
		if config.Storage.Backend != "file" {
			t.Errorf("expected file backend, got %q", config.Storage.Backend)
		}
		if config.Storage.Path != "/data/ygodeck/decks.json" {
			t.Errorf("unexpected storage path %q", config.Storage.Path)
		}
	})

	t.Run("LoadFromYAML", func(t *testing.T) {
		clearEnv(t)
		configPath := filepath.Join(t.TempDir(), "ygodeck.yaml")

		yamlContent := `
server:
  port: "9090"
  requestTimeout: 5s
catalog:
  baseURL: http://localhost:9999/api
  rateLimit: 2.5
images:
  workers: 2
  confirmThreshold: 20
storage:
  backend: sqlite
  path: /tmp/decks.db
log:
  format: short
`
		if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Server.Port != "9090" {
			t.Errorf("expected port 9090, got %s", config.Server.Port)
		}
		if config.Server.RequestTimeout != 5*time.Second {
			t.Errorf("expected request timeout 5s, got %v", config.Server.RequestTimeout)
		}
		if config.Catalog.BaseURL != "http://localhost:9999/api" {
			t.Errorf("unexpected base URL %q", config.Catalog.BaseURL)
		}
		if config.Catalog.RateLimit != 2.5 {
			t.Errorf("expected rate limit 2.5, got %v", config.Catalog.RateLimit)
		}
		if config.Images.Workers != 2 || config.Images.ConfirmThreshold != 20 {
			t.Errorf("unexpected images config %+v", config.Images)
		}
		if config.Storage.Backend != "sqlite" || config.Storage.Path != "/tmp/decks.db" {
			t.Errorf("unexpected storage config %+v", config.Storage)
		}
		if config.Log.Format != "short" {
			t.Errorf("expected short log format, got %q", config.Log.Format)
		}
	})

	t.Run("EnvironmentOverridesFile", func(t *testing.T) {
		clearEnv(t)
		configPath := filepath.Join(t.TempDir(), "ygodeck.yaml")
		if err := os.WriteFile(configPath, []byte("server:\n  port: \"9090\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		t.Setenv("PORT", "7000")
		t.Setenv("YGODECK_STORAGE_BACKEND", "memory")
		t.Setenv("YGODECK_IMAGES_WORKERS", "1")

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if config.Server.Port != "7000" {
			t.Errorf("expected PORT to win, got %s", config.Server.Port)
		}
		if config.Storage.Backend != "memory" || config.Storage.Path != "" {
			t.Errorf("unexpected storage config %+v", config.Storage)
		}
		if config.Images.Workers != 1 {
			t.Errorf("expected 1 worker, got %d", config.Images.Workers)
		}
	})

	t.Run("SQLiteDefaultPath", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("XDG_DATA_HOME", "/data")
		t.Setenv("YGODECK_STORAGE_BACKEND", "sqlite")

		config, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if config.Storage.Path != "/data/ygodeck/decks.db" {
			t.Errorf("unexpected storage path %q", config.Storage.Path)
		}
	})

	t.Run("InvalidFile", func(t *testing.T) {
		clearEnv(t)
		configPath := filepath.Join(t.TempDir(), "ygodeck.yaml")
		if err := os.WriteFile(configPath, []byte("server: [unclosed"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected an error for malformed YAML")
		}
	})
}

func TestConfigValidation(t *testing.T) {
	valid := func() *Config {
		c := DefaultConfig()
		c.Storage.Path = "/tmp/decks.json"
		return c
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
		errorMsg  string
	}{
		{
			name:   "ValidConfig",
			mutate: func(c *Config) {},
		},
		{
			name:      "MissingPort",
			mutate:    func(c *Config) { c.Server.Port = "" },
			wantError: true,
			errorMsg:  "server.port must be set",
		},
		{
			name:      "EmptyBaseURL",
			mutate:    func(c *Config) { c.Catalog.BaseURL = "" },
			wantError: true,
			errorMsg:  "catalog.baseURL must be set",
		},
		{
			name:      "NoWorkers",
			mutate:    func(c *Config) { c.Images.Workers = 0 },
			wantError: true,
			errorMsg:  "images.workers must be at least 1",
		},
		{
			name:      "UnknownBackend",
			mutate:    func(c *Config) { c.Storage.Backend = "redis" },
			wantError: true,
			errorMsg:  `unknown storage backend "redis"`,
		},
		{
			name:      "FileWithoutPath",
			mutate:    func(c *Config) { c.Storage.Path = "" },
			wantError: true,
			errorMsg:  "storage.path must be set for the file backend",
		},
		{
			name: "MemoryWithoutPath",
			mutate: func(c *Config) {
				c.Storage.Backend = "memory"
				c.Storage.Path = ""
			},
		},
		{
			name:      "NegativeRateLimit",
			mutate:    func(c *Config) { c.Images.RateLimit = -1 },
			wantError: true,
			errorMsg:  "rate limits cannot be negative",
		},
		{
			name:      "UnknownLogFormat",
			mutate:    func(c *Config) { c.Log.Format = "json" },
			wantError: true,
			errorMsg:  `unknown log format "json"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantError {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errorMsg)
				} else if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q, got %v", tt.errorMsg, err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestWorkersAreCapped(t *testing.T) {
	c := DefaultConfig()
	c.Storage.Backend = "memory"
	c.Images.Workers = 12

	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Images.Workers != MaxWorkers {
		t.Errorf("expected workers capped at %d, got %d", MaxWorkers, c.Images.Workers)
	}
}
