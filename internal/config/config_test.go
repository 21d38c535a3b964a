package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGIN", "")
	t.Setenv("AGENT_COMBO_SEED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Server.AllowedOrigin != "*" {
		t.Errorf("AllowedOrigin = %q, want *", cfg.Server.AllowedOrigin)
	}
	if cfg.Agent.ComboSeed != nil {
		t.Errorf("ComboSeed = %v, want nil", *cfg.Agent.ComboSeed)
	}
}

func TestLoadPortForms(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}

	t.Setenv("PORT", "127.0.0.1:9091")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9091" {
		t.Errorf("Addr = %q, want host:port preserved", cfg.Server.Addr)
	}
}

func TestLoadComboSeed(t *testing.T) {
	t.Setenv("AGENT_COMBO_SEED", "42")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Agent.ComboSeed == nil || *cfg.Agent.ComboSeed != 42 {
		t.Fatalf("ComboSeed = %v, want 42", cfg.Agent.ComboSeed)
	}

	t.Setenv("AGENT_COMBO_SEED", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed seed")
	}
}
