package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{"ENV": "development"}))
	if err != nil {
		t.Fatalf("LoadWith error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Session.Store != StoreMemory {
		t.Fatalf("expected memory store, got %q", cfg.Session.Store)
	}
	if cfg.Session.Secret == "" {
		t.Fatalf("expected dev secret fallback")
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Fatalf("expected 10s backend timeout, got %s", cfg.Backend.Timeout)
	}
}

func TestLoadWith_ProductionRequiresSecret(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV": "production",
	}))
	if err == nil {
		t.Fatalf("expected error without SESSION_SECRET")
	}
}

// Un deploy que olvida ENV no puede terminar firmando cookies con el secreto de dev.
func TestLoadWith_MissingEnvIsProduction(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err == nil {
		t.Fatalf("expected error without ENV and SESSION_SECRET")
	}

	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{"SESSION_SECRET": "s3cret"}))
	if err != nil {
		t.Fatalf("LoadWith error: %v", err)
	}
	if cfg.IsDev() || cfg.Session.Secret != "s3cret" {
		t.Fatalf("expected production config with the given secret, got env=%q", cfg.Env)
	}
}

func TestLoadWith_PostgresRequiresDSN(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_STORE": "postgres",
	}))
	if err == nil {
		t.Fatalf("expected error without DB_DSN")
	}
}

func TestLoadWith_UnknownStore(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_STORE": "disk",
	}))
	if err == nil {
		t.Fatalf("expected error for unknown store")
	}
}
