package config

import (
	"flag"
	"os"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("SESSION_FILE", "")
	t.Setenv("TOKEN_FILE", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.BaseURL != "localhost:8080" {
		t.Fatalf("BaseURL default expected 'localhost:8080', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8080" {
		t.Fatalf("ServerURL default expected 'http://localhost:8080', got %q", cfg.ServerURL)
	}
	if cfg.UploadDir != "uploads" {
		t.Fatalf("UploadDir default expected 'uploads', got %q", cfg.UploadDir)
	}
	// пустой путь означает «каталог конфигурации приложения»
	if cfg.SessionFile != "" || cfg.TokenFile != "" {
		t.Fatalf("client paths must default to empty: SessionFile=%q, TokenFile=%q", cfg.SessionFile, cfg.TokenFile)
	}
}

func TestNewConfig_SessionAndTokenFileFromEnv(t *testing.T) {
	t.Setenv("SESSION_FILE", "/tmp/vp-session.json")
	t.Setenv("TOKEN_FILE", "/tmp/vp-token")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.SessionFile != "/tmp/vp-session.json" {
		t.Fatalf("SessionFile expected '/tmp/vp-session.json', got %q", cfg.SessionFile)
	}
	if cfg.TokenFile != "/tmp/vp-token" {
		t.Fatalf("TokenFile expected '/tmp/vp-token', got %q", cfg.TokenFile)
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected 'top', got %q", cfg.AuthSecret)
	}
}

func TestNewConfig_RejectsBaseURLWithScheme(t *testing.T) {
	// BaseURL со схемой или путём не проходит валидацию и заменяется дефолтом
	t.Setenv("BASE_URL", "http://example.com:8080/api")
	t.Setenv("ENABLE_HTTPS", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8080" {
		t.Fatalf("invalid BaseURL must fall back to default, got %q", cfg.BaseURL)
	}
}
