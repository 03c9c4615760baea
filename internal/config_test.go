package internal

import (
	"log/slog"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.App.HTTP.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.App.HTTP.Port)
	}
	if cfg.Content.Path != "./posts" {
		t.Errorf("content path = %q", cfg.Content.Path)
	}
	if cfg.App.LogLevel != slog.LevelInfo {
		t.Errorf("log level = %v", cfg.App.LogLevel)
	}
}

func TestHTTPConfig_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 9090}
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 9090 should pass: %v", err)
	}
	if cfg.Address() != ":9090" {
		t.Errorf("address = %q", cfg.Address())
	}
}

func TestContentConfig_PathRequired(t *testing.T) {
	cfg := ContentConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty content path should fail validation")
	}
}

func TestFullConfig_ContentValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Content.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("full config validate should catch content error")
	}
}
