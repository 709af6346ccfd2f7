package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Content  ContentConfig  `yaml:"content" json:"content"`
	Carousel CarouselConfig `yaml:"carousel" json:"carousel"`
	Output   OutputConfig   `yaml:"output" json:"output"`
	UI       UIConfig       `yaml:"ui" json:"ui"`
	Session  SessionConfig  `yaml:"session" json:"session"`
}

// ContentConfig configures where projects come from and who sees them
type ContentConfig struct {
	Dir        string `yaml:"dir" json:"dir"`                 // project content directory
	AutoReload bool   `yaml:"auto_reload" json:"auto_reload"` // watch the content dir for edits
	IncludeNDA bool   `yaml:"include_nda" json:"include_nda"` // show restricted projects
	NDAKey     string `yaml:"nda_key" json:"nda_key"`         // unlock passphrase (or env reference)
}

// CarouselConfig tunes the slide engine
type CarouselConfig struct {
	SettleDelay     time.Duration `yaml:"settle_delay" json:"settle_delay"`         // quiet period before a position settles
	FlickProjection time.Duration `yaml:"flick_projection" json:"flick_projection"` // how far release velocity projects
	SpringFrequency float64       `yaml:"spring_frequency" json:"spring_frequency"` // inertia spring angular frequency
	SpringDamping   float64       `yaml:"spring_damping" json:"spring_damping"`     // inertia spring damping ratio
	FrameRate       int           `yaml:"frame_rate" json:"frame_rate"`             // animation frames per second
	WrapAround      bool          `yaml:"wrap_around" json:"wrap_around"`           // prev/next wrap past the ends
}

// OutputConfig configures non-TUI output formatting
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
}

// UIConfig configures the browse view
type UIConfig struct {
	Theme         string `yaml:"theme" json:"theme"`                   // default|minimal|high-contrast
	ShowFilmstrip bool   `yaml:"show_filmstrip" json:"show_filmstrip"` // render the mirror track
	LogFile       string `yaml:"log_file" json:"log_file"`             // sink while the TUI owns the terminal
}

// SessionConfig configures resume-where-you-left-off behavior
type SessionConfig struct {
	Path    string `yaml:"path" json:"path"`       // session file location
	Restore bool   `yaml:"restore" json:"restore"` // resume the last route on launch
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Content: ContentConfig{
			Dir:        "./content",
			AutoReload: true,
			IncludeNDA: false,
			NDAKey:     "",
		},
		Carousel: CarouselConfig{
			SettleDelay:     150 * time.Millisecond,
			FlickProjection: 180 * time.Millisecond,
			SpringFrequency: 7.0,
			SpringDamping:   1.0,
			FrameRate:       60,
			WrapAround:      true,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
		UI: UIConfig{
			Theme:         "default",
			ShowFilmstrip: true,
			LogFile:       "~/.cache/folio/folio.log",
		},
		Session: SessionConfig{
			Path:    "~/.cache/folio/session.yaml",
			Restore: true,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateContentConfig(); err != nil {
		return err
	}
	if err := c.validateCarouselConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return c.validateUIConfig()
}

// validateContentConfig validates content-related configuration
func (c *Config) validateContentConfig() error {
	if c.Content.Dir == "" {
		return fmt.Errorf("content directory must not be empty")
	}
	return nil
}

// validateCarouselConfig validates slide engine tuning
func (c *Config) validateCarouselConfig() error {
	if c.Carousel.SettleDelay < 0 {
		return fmt.Errorf("settle delay cannot be negative")
	}
	if c.Carousel.FlickProjection < 0 {
		return fmt.Errorf("flick projection cannot be negative")
	}
	if c.Carousel.SpringFrequency < 0 {
		return fmt.Errorf("spring frequency cannot be negative")
	}
	if c.Carousel.SpringDamping < 0 {
		return fmt.Errorf("spring damping cannot be negative")
	}
	if c.Carousel.FrameRate < 0 || c.Carousel.FrameRate > 240 {
		return fmt.Errorf("frame rate must be between 0 and 240, got %d", c.Carousel.FrameRate)
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"text":     true,
			"json":     true,
			"markdown": true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: text, json, markdown)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateUIConfig validates browse view configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"minimal":       true,
			"high-contrast": true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, minimal, high-contrast)", c.UI.Theme)
		}
	}
	return nil
}
