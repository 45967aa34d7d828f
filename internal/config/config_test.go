package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "localhost"
  port: 5432
  name: "mesocoach"
  user: "mesocoach"
  password: "secret"
  sslmode: "disable"
auth:
  api_key: "test-key-123"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields
// populated and engine defaults applied.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "mesocoach" {
		t.Errorf("database.name = %q, want %q", cfg.Database.Name, "mesocoach")
	}
	if cfg.Auth.APIKey != "test-key-123" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "test-key-123")
	}
	if cfg.Engine.DefaultDaysPerWeek != 4 {
		t.Errorf("engine.default_days_per_week = %d, want default 4", cfg.Engine.DefaultDaysPerWeek)
	}
	if cfg.Engine.DefaultSessionMinutes != 60 {
		t.Errorf("engine.default_session_minutes = %d, want default 60", cfg.Engine.DefaultSessionMinutes)
	}
}

// TestEnvOverride verifies that MESOCOACH_ env vars take precedence over YAML
// values so deployments can override config via environment.
func TestEnvOverride(t *testing.T) {
	t.Setenv("MESOCOACH_DB_HOST", "override-host")
	t.Setenv("MESOCOACH_DB_PORT", "9999")
	t.Setenv("MESOCOACH_AUTH_API_KEY", "env-key")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Host != "override-host" {
		t.Errorf("database.host = %q, want %q", cfg.Database.Host, "override-host")
	}
	if cfg.Database.Port != 9999 {
		t.Errorf("database.port = %d, want 9999", cfg.Database.Port)
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "env-key")
	}
	// Unchanged fields should keep YAML values.
	if cfg.Database.Name != "mesocoach" {
		t.Errorf("database.name = %q, want %q", cfg.Database.Name, "mesocoach")
	}
}

// TestValidationErrors verifies missing required fields are rejected.
func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing api key", `
server:
  port: 8080
database:
  host: "localhost"
  port: 5432
  name: "mesocoach"
  user: "mesocoach"
`},
		{"missing database host", `
server:
  port: 8080
database:
  port: 5432
  name: "mesocoach"
  user: "mesocoach"
auth:
  api_key: "key"
`},
		{"no port without tailscale", `
database:
  host: "localhost"
  port: 5432
  name: "mesocoach"
  user: "mesocoach"
auth:
  api_key: "key"
`},
		{"tailscale without hostname", `
database:
  host: "localhost"
  port: 5432
  name: "mesocoach"
  user: "mesocoach"
auth:
  api_key: "key"
tailscale:
  enabled: true
`},
	}
	for _, tt := range tests {
		if _, err := Load(writeTemp(t, tt.yaml)); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

// TestTailscaleAllowsMissingPort verifies server.port is optional when the
// listener comes from tsnet.
func TestTailscaleAllowsMissingPort(t *testing.T) {
	cfg, err := Load(writeTemp(t, `
database:
  host: "localhost"
  port: 5432
  name: "mesocoach"
  user: "mesocoach"
auth:
  api_key: "key"
tailscale:
  enabled: true
  hostname: "mesocoach"
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Tailscale.Enabled || cfg.Tailscale.Hostname != "mesocoach" {
		t.Errorf("tailscale config = %+v", cfg.Tailscale)
	}
}

// TestDSN verifies the PostgreSQL connection string format and the sslmode
// default.
func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, Name: "meso", User: "u", Password: "p"}
	want := "postgres://u:p@db:5432/meso?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}

	d.SSLMode = "require"
	if got := d.DSN(); got != "postgres://u:p@db:5432/meso?sslmode=require" {
		t.Errorf("DSN with sslmode = %q", got)
	}
}
