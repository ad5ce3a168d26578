package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Fatalf("Server.Port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("Auth.BcryptCost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if cfg.Auth.SessionExpTime != 24*time.Hour {
		t.Fatalf("Auth.SessionExpTime = %s, want 24h", cfg.Auth.SessionExpTime)
	}
	if cfg.RabbitMQ.Enabled {
		t.Fatal("RabbitMQ.Enabled should default to false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("JWT_EXPIRATION", "30m")
	t.Setenv("RABBITMQ_ENABLED", "true")

	cfg := Load()

	if cfg.Server.Port != "9090" {
		t.Fatalf("Server.Port = %s, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Port != 3307 {
		t.Fatalf("Database.Port = %d, want 3307", cfg.Database.Port)
	}
	if cfg.Auth.JWTExpiration != 30*time.Minute {
		t.Fatalf("Auth.JWTExpiration = %s, want 30m", cfg.Auth.JWTExpiration)
	}
	if !cfg.RabbitMQ.Enabled {
		t.Fatal("RabbitMQ.Enabled should be true")
	}
}

func TestGetDSN(t *testing.T) {
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "birthday")

	cfg := Load()

	want := "svc:secret@tcp(db.internal:3306)/birthday?parseTime=true&loc=UTC"
	if got := cfg.GetDSN(); got != want {
		t.Fatalf("GetDSN() = %s, want %s", got, want)
	}
}
