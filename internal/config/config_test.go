package config

import (
	"os"
	"testing"
)

var configEnvVars = []string{
	"PORT", "ENV", "API_KEY",
	"SITE_LATITUDE", "SITE_LONGITUDE", "SITE_UTC_OFFSET",
	"LOG_LEVEL", "LOG_FORMAT",
}

func clearEnv() {
	for _, key := range configEnvVars {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}

	// Kathmandu is the default reference site
	if cfg.SiteLatitude != 27.7172 {
		t.Errorf("SiteLatitude = %g, want 27.7172", cfg.SiteLatitude)
	}
	if cfg.SiteLongitude != 85.3240 {
		t.Errorf("SiteLongitude = %g, want 85.3240", cfg.SiteLongitude)
	}
	if cfg.SiteUTCOffset != 5.75 {
		t.Errorf("SiteUTCOffset = %g, want 5.75", cfg.SiteUTCOffset)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("API_KEY", "secret-key-123")
	os.Setenv("SITE_LATITUDE", "28.2096")
	os.Setenv("SITE_LONGITUDE", "83.9856")
	os.Setenv("SITE_UTC_OFFSET", "5.75")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.APIKey != "secret-key-123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret-key-123")
	}
	if cfg.SiteLatitude != 28.2096 {
		t.Errorf("SiteLatitude = %g, want 28.2096", cfg.SiteLatitude)
	}
	if cfg.SiteLongitude != 83.9856 {
		t.Errorf("SiteLongitude = %g, want 83.9856", cfg.SiteLongitude)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "PORT", "99999"},
		{"unknown environment", "ENV", "fancy"},
		{"latitude out of range", "SITE_LATITUDE", "123.4"},
		{"longitude out of range", "SITE_LONGITUDE", "-312"},
		{"utc offset out of range", "SITE_UTC_OFFSET", "26"},
		{"unknown log level", "LOG_LEVEL", "loud"},
		{"unknown log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()
			os.Setenv(tt.key, tt.value)
			defer clearEnv()

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s expected error, got nil", tt.key, tt.value)
			}
		})
	}
}

func TestConfig_Site(t *testing.T) {
	cfg := &Config{
		SiteLatitude:  28.2096,
		SiteLongitude: 83.9856,
		SiteUTCOffset: 5.75,
	}
	site := cfg.Site()
	if site.Latitude != cfg.SiteLatitude ||
		site.Longitude != cfg.SiteLongitude ||
		site.UTCOffset != cfg.SiteUTCOffset {
		t.Errorf("Site() = %+v, does not match config %+v", site, cfg)
	}
}

func TestConfig_EnvHelpers(t *testing.T) {
	dev := &Config{Env: EnvDevelopment}
	if !dev.IsDevelopment() || dev.IsProduction() {
		t.Error("development helpers inconsistent")
	}
	prod := &Config{Env: EnvProduction}
	if prod.IsDevelopment() || !prod.IsProduction() {
		t.Error("production helpers inconsistent")
	}
}
