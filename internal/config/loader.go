package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.folio.yaml",               // Project-specific config (highest priority)
	"~/.config/folio/config.yaml", // User config
	"/etc/folio/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.folio.yaml
// 4. ~/.config/folio/config.yaml
// 5. /etc/folio/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// If custom path is provided, use only that path
	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load from standard paths in reverse priority order (lowest to highest)
		paths := make([]string, len(l.configPaths))
		copy(paths, l.configPaths)
		for i := len(paths)/2 - 1; i >= 0; i-- {
			opp := len(paths) - 1 - i
			paths[i], paths[opp] = paths[opp], paths[i]
		}

		for _, path := range paths {
			expandedPath := expandPath(path)
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	// Apply environment variable overrides
	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	// Expand user paths once, after every source is merged
	config.Content.Dir = expandPath(config.Content.Dir)
	config.Session.Path = expandPath(config.Session.Path)
	config.UI.LogFile = expandPath(config.UI.LogFile)

	// Validate the final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() before reaching here
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var overlay fileConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &overlay)

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Content Config
		"FOLIO_CONTENT_DIR":         func(v string) error { config.Content.Dir = v; return nil },
		"FOLIO_CONTENT_AUTO_RELOAD": func(v string) error { return parseBool(v, &config.Content.AutoReload) },
		"FOLIO_CONTENT_INCLUDE_NDA": func(v string) error { return parseBool(v, &config.Content.IncludeNDA) },
		"FOLIO_NDA_KEY":             func(v string) error { config.Content.NDAKey = v; return nil },

		// Carousel Config
		"FOLIO_CAROUSEL_SETTLE_DELAY":     func(v string) error { return parseDuration(v, &config.Carousel.SettleDelay) },
		"FOLIO_CAROUSEL_FLICK_PROJECTION": func(v string) error { return parseDuration(v, &config.Carousel.FlickProjection) },
		"FOLIO_CAROUSEL_FRAME_RATE":       func(v string) error { return parseInt(v, &config.Carousel.FrameRate) },
		"FOLIO_CAROUSEL_WRAP_AROUND":      func(v string) error { return parseBool(v, &config.Carousel.WrapAround) },

		// Output Config
		"FOLIO_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"FOLIO_OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"FOLIO_OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },

		// UI Config
		"FOLIO_UI_THEME":          func(v string) error { config.UI.Theme = v; return nil },
		"FOLIO_UI_SHOW_FILMSTRIP": func(v string) error { return parseBool(v, &config.UI.ShowFilmstrip) },
		"FOLIO_UI_LOG_FILE":       func(v string) error { config.UI.LogFile = v; return nil },

		// Session Config
		"FOLIO_SESSION_PATH":    func(v string) error { config.Session.Path = v; return nil },
		"FOLIO_SESSION_RESTORE": func(v string) error { return parseBool(v, &config.Session.Restore) },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/etc/passwd") ||
		strings.HasPrefix(absPath, "/etc/shadow") ||
		strings.HasPrefix(absPath, "/proc/") ||
		strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// fileConfig mirrors Config for file decoding. Booleans are pointers so an
// explicit false in a file is distinguishable from an omitted key; several
// of them default to true.
type fileConfig struct {
	Version  string             `yaml:"version"`
	Content  fileContentConfig  `yaml:"content"`
	Carousel fileCarouselConfig `yaml:"carousel"`
	Output   fileOutputConfig   `yaml:"output"`
	UI       fileUIConfig       `yaml:"ui"`
	Session  fileSessionConfig  `yaml:"session"`
}

type fileContentConfig struct {
	Dir        string `yaml:"dir"`
	AutoReload *bool  `yaml:"auto_reload"`
	IncludeNDA *bool  `yaml:"include_nda"`
	NDAKey     string `yaml:"nda_key"`
}

type fileCarouselConfig struct {
	SettleDelay     time.Duration `yaml:"settle_delay"`
	FlickProjection time.Duration `yaml:"flick_projection"`
	SpringFrequency float64       `yaml:"spring_frequency"`
	SpringDamping   float64       `yaml:"spring_damping"`
	FrameRate       int           `yaml:"frame_rate"`
	WrapAround      *bool         `yaml:"wrap_around"`
}

type fileOutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	ColorMode     string `yaml:"color_mode"`
	Verbose       *bool  `yaml:"verbose"`
}

type fileUIConfig struct {
	Theme         string `yaml:"theme"`
	ShowFilmstrip *bool  `yaml:"show_filmstrip"`
	LogFile       string `yaml:"log_file"`
}

type fileSessionConfig struct {
	Path    string `yaml:"path"`
	Restore *bool  `yaml:"restore"`
}

// mergeConfigs merges a decoded file overlay into the destination config.
// Strings and numbers overwrite when non-zero; booleans overwrite when the
// key was present in the file.
func mergeConfigs(dst *Config, src *fileConfig) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeContentConfig(&dst.Content, &src.Content)
	mergeCarouselConfig(&dst.Carousel, &src.Carousel)
	mergeOutputConfig(&dst.Output, &src.Output)
	mergeUIConfig(&dst.UI, &src.UI)
	mergeSessionConfig(&dst.Session, &src.Session)
}

func mergeContentConfig(dst *ContentConfig, src *fileContentConfig) {
	if src.Dir != "" {
		dst.Dir = src.Dir
	}
	if src.AutoReload != nil {
		dst.AutoReload = *src.AutoReload
	}
	if src.IncludeNDA != nil {
		dst.IncludeNDA = *src.IncludeNDA
	}
	if src.NDAKey != "" {
		dst.NDAKey = src.NDAKey
	}
}

func mergeCarouselConfig(dst *CarouselConfig, src *fileCarouselConfig) {
	if src.SettleDelay > 0 {
		dst.SettleDelay = src.SettleDelay
	}
	if src.FlickProjection > 0 {
		dst.FlickProjection = src.FlickProjection
	}
	if src.SpringFrequency > 0 {
		dst.SpringFrequency = src.SpringFrequency
	}
	if src.SpringDamping > 0 {
		dst.SpringDamping = src.SpringDamping
	}
	if src.FrameRate > 0 {
		dst.FrameRate = src.FrameRate
	}
	if src.WrapAround != nil {
		dst.WrapAround = *src.WrapAround
	}
}

func mergeOutputConfig(dst *OutputConfig, src *fileOutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	if src.Verbose != nil {
		dst.Verbose = *src.Verbose
	}
}

func mergeUIConfig(dst *UIConfig, src *fileUIConfig) {
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.ShowFilmstrip != nil {
		dst.ShowFilmstrip = *src.ShowFilmstrip
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
}

func mergeSessionConfig(dst *SessionConfig, src *fileSessionConfig) {
	if src.Path != "" {
		dst.Path = src.Path
	}
	if src.Restore != nil {
		dst.Restore = *src.Restore
	}
}

// parseBool parses a boolean environment value
func parseBool(value string, target *bool) error {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("expected boolean value, got %q", value)
	}
	*target = parsed
	return nil
}

// parseInt parses an integer environment value
func parseInt(value string, target *int) error {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("expected integer value, got %q", value)
	}
	*target = parsed
	return nil
}

// parseDuration parses a duration environment value
func parseDuration(value string, target *time.Duration) error {
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("expected duration value (e.g. 150ms), got %q", value)
	}
	*target = parsed
	return nil
}
