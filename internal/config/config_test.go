package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaultsAndEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REGISTRATION_MAX_UNITS", "30")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want env override 9090", cfg.Server.Port)
	}
	if cfg.Database.DBName != "polyreg" {
		t.Errorf("dbname = %q, want default polyreg", cfg.Database.DBName)
	}
	if cfg.Registration.MinUnits != 12 || cfg.Registration.MaxUnits != 30 {
		t.Errorf("unit bounds = (%d, %d)", cfg.Registration.MinUnits, cfg.Registration.MaxUnits)
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error when JWT secret is unset")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("server:\n  port: \"8181\"\nadmin:\n  username: registrar\n  password: hunter2\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Port != "8181" {
		t.Errorf("port = %q, want 8181", cfg.Server.Port)
	}
	if !cfg.AdminConfigured() {
		t.Error("expected admin credentials to be configured")
	}
}

func TestAdminConfigured(t *testing.T) {
	var cfg Config
	if cfg.AdminConfigured() {
		t.Error("empty credentials should not count as configured")
	}
	cfg.Admin.Username = "registrar"
	cfg.Admin.Password = "hunter2"
	if !cfg.AdminConfigured() {
		t.Error("expected configured credentials")
	}
}
