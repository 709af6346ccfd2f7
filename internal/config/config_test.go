package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test that defaults are set correctly
	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}

	if cfg.Content.Dir != "./content" {
		t.Errorf("Expected content dir ./content, got %s", cfg.Content.Dir)
	}

	if cfg.Carousel.SettleDelay != 150*time.Millisecond {
		t.Errorf("Expected settle delay 150ms, got %v", cfg.Carousel.SettleDelay)
	}

	if cfg.Carousel.FrameRate != 60 {
		t.Errorf("Expected frame rate 60, got %d", cfg.Carousel.FrameRate)
	}

	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}

	if cfg.UI.Theme != "default" {
		t.Errorf("Expected theme default, got %s", cfg.UI.Theme)
	}

	if !cfg.Session.Restore {
		t.Error("Expected session restore to default to true")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty content dir",
			mutate:  func(c *Config) { c.Content.Dir = "" },
			wantErr: true,
			errMsg:  "content directory must not be empty",
		},
		{
			name:    "negative settle delay",
			mutate:  func(c *Config) { c.Carousel.SettleDelay = -time.Second },
			wantErr: true,
			errMsg:  "settle delay cannot be negative",
		},
		{
			name:    "negative flick projection",
			mutate:  func(c *Config) { c.Carousel.FlickProjection = -time.Millisecond },
			wantErr: true,
			errMsg:  "flick projection cannot be negative",
		},
		{
			name:    "frame rate too high",
			mutate:  func(c *Config) { c.Carousel.FrameRate = 500 },
			wantErr: true,
			errMsg:  "frame rate must be between 0 and 240",
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "xml" },
			wantErr: true,
			errMsg:  "invalid output format: xml (must be one of: text, json, markdown)",
		},
		{
			name:    "invalid color mode",
			mutate:  func(c *Config) { c.Output.ColorMode = "sometimes" },
			wantErr: true,
			errMsg:  "invalid color mode: sometimes (must be one of: auto, always, never)",
		},
		{
			name:    "invalid theme",
			mutate:  func(c *Config) { c.UI.Theme = "neon" },
			wantErr: true,
			errMsg:  "invalid theme: neon (must be one of: default, minimal, high-contrast)",
		},
		{
			name:    "empty enums are allowed",
			mutate:  func(c *Config) { c.Output.DefaultFormat = ""; c.Output.ColorMode = ""; c.UI.Theme = "" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected validation error, got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no validation error, got %v", err)
			}
		})
	}
}
