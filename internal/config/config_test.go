package config

import "testing"

func setRequired(t *testing.T) {
	t.Setenv("WA_ACCESS_TOKEN", "token")
	t.Setenv("WA_PHONE_NUMBER_ID", "123456")
}

func clearOptional(t *testing.T) {
	for _, key := range []string{"WA_VERIFY_TOKEN", "STATE_BACKEND", "DATA_DIR", "PORT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	clearOptional(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port, got %s", cfg.Port)
	}
	if cfg.StateBackend != BackendMemory {
		t.Errorf("expected memory backend, got %s", cfg.StateBackend)
	}
	if cfg.DataDir != "." {
		t.Errorf("expected default data dir, got %s", cfg.DataDir)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Errorf("expected default logging config, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if len(cfg.WAVerifyToken) != 32 {
		t.Errorf("expected generated 16-byte hex verify token, got %q", cfg.WAVerifyToken)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	clearOptional(t)
	t.Setenv("PORT", "9090")
	t.Setenv("WA_VERIFY_TOKEN", "fixed-token")
	t.Setenv("STATE_BACKEND", "bolt")
	t.Setenv("DATA_DIR", "/var/lib/rumbo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port override, got %s", cfg.Port)
	}
	if cfg.WAVerifyToken != "fixed-token" {
		t.Errorf("expected verify token override, got %s", cfg.WAVerifyToken)
	}
	if cfg.StateBackend != BackendBolt {
		t.Errorf("expected bolt backend, got %s", cfg.StateBackend)
	}
	if cfg.DataDir != "/var/lib/rumbo" {
		t.Errorf("expected data dir override, got %s", cfg.DataDir)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	clearOptional(t)
	t.Setenv("WA_ACCESS_TOKEN", "")
	t.Setenv("WA_PHONE_NUMBER_ID", "123456")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing WA_ACCESS_TOKEN")
	}

	t.Setenv("WA_ACCESS_TOKEN", "token")
	t.Setenv("WA_PHONE_NUMBER_ID", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing WA_PHONE_NUMBER_ID")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	setRequired(t)
	clearOptional(t)
	t.Setenv("STATE_BACKEND", "redis")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
