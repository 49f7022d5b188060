package config

import (
	"context"
	"testing"
)

func setRequiredJWT(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "echart-api")
	t.Setenv("JWT_AUDIENCE", "echart-frontend")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredJWT(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development profile by default")
	}
	if cfg.JWT.ExpireMinutes != 180 {
		t.Fatalf("expected default token lifetime 180, got %d", cfg.JWT.ExpireMinutes)
	}
	if cfg.Auth.HashScheme != "md5" {
		t.Fatalf("expected legacy hash scheme by default, got %s", cfg.Auth.HashScheme)
	}
	if cfg.RateLimit.ReadLimit != 100 || cfg.RateLimit.WriteLimit != 30 || cfg.RateLimit.LoginLimit != 5 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.RateLimit.WindowSeconds != 60 {
		t.Fatalf("expected 60s window, got %d", cfg.RateLimit.WindowSeconds)
	}
}

func TestLoad_MissingJWTConfigFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ISSUER", "echart-api")
	t.Setenv("JWT_AUDIENCE", "echart-frontend")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}

func TestLoad_CORSOriginsSplit(t *testing.T) {
	setRequiredJWT(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://echart.example;https://staging.echart.example")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if cfg.CORSOrigins[0] != "https://echart.example" {
		t.Fatalf("unexpected first origin: %s", cfg.CORSOrigins[0])
	}
}

func TestLoad_OverridesFromEnvironment(t *testing.T) {
	setRequiredJWT(t)
	t.Setenv("JWT_TOKEN_EXPIRE_MINUTES", "30")
	t.Setenv("AUTH_HASH_SCHEME", "bcrypt")
	t.Setenv("ENV", "production")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.JWT.ExpireMinutes != 30 {
		t.Fatalf("expected 30, got %d", cfg.JWT.ExpireMinutes)
	}
	if cfg.Auth.HashScheme != "bcrypt" {
		t.Fatalf("expected bcrypt, got %s", cfg.Auth.HashScheme)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("production profile must not report development")
	}
}
