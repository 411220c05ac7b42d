package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/raghuwanshi313/EDP-APP/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	MaxFileSize    int64
	LogLevel       string
	AllowedOrigins []string
	ZoomMin        float64
	ZoomMax        float64
	ZoomStep       float64
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvListOrDefault("ALLOWED_ORIGINS", []string{"*"}),
		ZoomMin:        getEnvFloatOrDefault("ZOOM_MIN", domain.DefaultZoomBounds.Min),
		ZoomMax:        getEnvFloatOrDefault("ZOOM_MAX", domain.DefaultZoomBounds.Max),
		ZoomStep:       getEnvFloatOrDefault("ZOOM_STEP", domain.DefaultZoomBounds.Step),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetAllowedOrigins returns the CORS origin whitelist
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetZoomBounds returns the zoom range sessions are created with
func (c *AppConfig) GetZoomBounds() domain.ZoomBounds {
	return domain.ZoomBounds{Min: c.ZoomMin, Max: c.ZoomMax, Step: c.ZoomStep}
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}
