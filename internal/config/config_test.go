package config

import "testing"

const defaultMaxFileSize int64 = 50 * 1024 * 1024

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("ZOOM_MIN", "")
	t.Setenv("ZOOM_MAX", "")
	t.Setenv("ZOOM_STEP", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	origins := cfg.GetAllowedOrigins()
	if len(origins) != 1 || origins[0] != "*" {
		t.Fatalf("expected default origins [*], got %v", origins)
	}
	zoom := cfg.GetZoomBounds()
	if zoom.Min != 0.5 || zoom.Max != 3.0 || zoom.Step != 0.2 {
		t.Fatalf("expected default zoom bounds 0.5..3.0 step 0.2, got %+v", zoom)
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://reader.example.com")
	t.Setenv("ZOOM_MIN", "1.0")
	t.Setenv("ZOOM_MAX", "2.0")
	t.Setenv("ZOOM_STEP", "0.25")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	origins := cfg.GetAllowedOrigins()
	if len(origins) != 2 || origins[0] != "http://localhost:5173" || origins[1] != "https://reader.example.com" {
		t.Fatalf("expected two trimmed origins, got %v", origins)
	}
	zoom := cfg.GetZoomBounds()
	if zoom.Min != 1.0 || zoom.Max != 2.0 || zoom.Step != 0.25 {
		t.Fatalf("expected zoom bounds 1.0..2.0 step 0.25, got %+v", zoom)
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("ZOOM_STEP", "fast")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetZoomBounds().Step != 0.2 {
		t.Fatalf("expected default zoom step 0.2, got %v", cfg.GetZoomBounds().Step)
	}
}
