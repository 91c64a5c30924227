package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("STORE_BACKEND")
	os.Unsetenv("STORE_REMOTE_URL")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port == "" {
		t.Fatalf("expected default server port, got: %+v", cfg.Server)
	}
	if cfg.Store.Backend != "memory" {
		t.Fatalf("expected memory backend by default, got %q", cfg.Store.Backend)
	}
	if cfg.Session.TTL <= 0 {
		t.Fatalf("expected positive session TTL, got %v", cfg.Session.TTL)
	}
}

func TestLoadConfigRestBackend(t *testing.T) {
	os.Setenv("STORE_BACKEND", "rest")
	os.Setenv("STORE_REMOTE_URL", "http://localhost:8000")
	defer os.Unsetenv("STORE_BACKEND")
	defer os.Unsetenv("STORE_REMOTE_URL")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Store.RemoteURL != "http://localhost:8000" {
		t.Fatalf("unexpected remote url: %q", cfg.Store.RemoteURL)
	}
}

func TestLoadConfigRejectsIncompleteBackends(t *testing.T) {
	os.Setenv("STORE_BACKEND", "rest")
	os.Unsetenv("STORE_REMOTE_URL")
	defer os.Unsetenv("STORE_BACKEND")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for rest backend without remote url")
	}

	os.Setenv("STORE_BACKEND", "warehouse")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
