package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerConfig.ListenAddr != ":8080" {
		t.Errorf("expected default listen addr :8080, got %q", cfg.ServerConfig.ListenAddr)
	}
	if cfg.MongoConfig.Database != "canteen" || cfg.MongoConfig.Collection != "orders" {
		t.Errorf("unexpected mongo defaults: %+v", cfg.MongoConfig)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("expected default allowed origins")
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	contents := `
log-level = "debug"
allowed-origins = ["http://example.com"]

[server]
listen-addr = ":9090"
read-timeout = "15s"

[mongo]
uri = "mongodb://db:27017"
database = "canteen2"

[redis]
addr = "redis:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://example.com" {
		t.Errorf("expected overridden origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.ServerConfig.ListenAddr != ":9090" {
		t.Errorf("expected listen addr :9090, got %q", cfg.ServerConfig.ListenAddr)
	}
	if cfg.ServerConfig.ReadTimeout != 15*time.Second {
		t.Errorf("expected read timeout 15s, got %v", cfg.ServerConfig.ReadTimeout)
	}
	// Untouched keys keep their defaults.
	if cfg.ServerConfig.WriteTimeout != 10*time.Second {
		t.Errorf("expected default write timeout, got %v", cfg.ServerConfig.WriteTimeout)
	}
	if cfg.MongoConfig.Collection != "orders" {
		t.Errorf("expected default collection, got %q", cfg.MongoConfig.Collection)
	}
	if cfg.RedisConfig.DB != 2 {
		t.Errorf("expected redis db 2, got %d", cfg.RedisConfig.DB)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/server.toml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
