package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir reads every project file (*.yaml, *.yml) in dir, one project per
// file. Files starting with "_" are skipped, so drafts can sit next to
// published entries.
func LoadDir(dir string) ([]Project, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory %s: %w", dir, err)
	}

	seen := make(map[string]string)
	var projects []Project
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), "_") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		p, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate slug %q in %s (already defined in %s)", p.Slug, entry.Name(), prev)
		}
		seen[p.Slug] = entry.Name()
		projects = append(projects, p)
	}
	return projects, nil
}

func loadFile(path string) (Project, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is scoped to the content directory
	if err != nil {
		return Project{}, fmt.Errorf("failed to read project file %s: %w", path, err)
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("failed to parse project file %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Project{}, fmt.Errorf("invalid project file %s: %w", path, err)
	}
	return p, nil
}
