package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.Session.LoginPath != "/login" {
		t.Fatalf("expected default login path, got %q", cfg.Session.LoginPath)
	}
	if cfg.Session.CredentialsTTL != 24*time.Hour {
		t.Fatalf("unexpected credentials ttl: %s", cfg.Session.CredentialsTTL)
	}
	if cfg.Session.GateTimeout != 10*time.Second {
		t.Fatalf("unexpected gate timeout: %s", cfg.Session.GateTimeout)
	}
	if cfg.Backend.AuthURL != "http://localhost:8000/api/v1/auth" {
		t.Fatalf("unexpected auth url: %q", cfg.Backend.AuthURL)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env by default")
	}
}

func TestLoadWith_MissingSecret(t *testing.T) {
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error when SESSION_SECRET is missing")
	}
}

func TestLoadWith_GateTimeoutShorterThanValidation(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_SECRET":     "s3cret",
		"GATE_TIMEOUT":       "2s",
		"VALIDATION_TIMEOUT": "5s",
	}))
	if err == nil {
		t.Fatalf("expected error when the gate timeout undercuts the validation timeout")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_SECRET": "s3cret",
		"ENV":            "production",
		"REDIS_DB":       "3",
		"AUDIT_WORKERS":  "8",
		"SECURE_COOKIES": "true",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("expected production env")
	}
	if cfg.Redis.DB != 3 || cfg.Audit.Workers != 8 || !cfg.Session.SecureCookies {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
