package nav

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Session records the last visited route so a later launch can resume there.
type Session struct {
	Route   string    `yaml:"route"`
	SavedAt time.Time `yaml:"saved_at"`
}

// SaveSession writes the current route to path, creating parent directories
// as needed.
func SaveSession(path, route string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := yaml.Marshal(&Session{Route: route, SavedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// LoadSession reads the last saved route. A missing file is not an error;
// it returns an empty route.
func LoadSession(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 - path comes from validated config
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read session file: %w", err)
	}
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("failed to parse session file: %w", err)
	}
	return s.Route, nil
}
