package config

import (
	"testing"
	"time"
)

func TestValidate_ReportsMissingRequired(t *testing.T) {
	c := Config{}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func validBase(env string) Config {
	return Config{
		App:   AppConfig{Env: env, Port: 8080},
		DB:    DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "x", Name: "ccdata", SSLMode: "disable"},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
		Auth:  AuthConfig{JWTSecret: "secret"},
	}
}

func TestValidate_ProductionRequiresSSLMode(t *testing.T) {
	c := validBase("production")
	c.DB.SSLMode = ""
	c.Auth.JWTIssuer = "iss"
	c.Auth.JWTAudience = "aud"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for production without DB_SSLMODE")
	}
}

func TestValidate_LocalDefaults(t *testing.T) {
	c := validBase("local")
	c.DB.SSLMode = ""
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.DB.SSLMode != "disable" {
		t.Fatalf("expected sslmode disable default, got %q", c.DB.SSLMode)
	}
	if c.Desk.Channel != "telephony" {
		t.Fatalf("expected telephony channel default, got %q", c.Desk.Channel)
	}
	if c.Desk.CallGuardTTL != 4*time.Hour {
		t.Fatalf("expected call guard TTL default, got %v", c.Desk.CallGuardTTL)
	}
}

func TestValidate_RejectsUnknownChannel(t *testing.T) {
	c := validBase("local")
	c.Desk.Channel = "carrier-pigeon"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for unknown channel")
	}
}
