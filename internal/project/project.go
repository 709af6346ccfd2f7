// Package project supplies the directory of portfolio projects: loading from
// the content directory, the NDA visibility filter, and the stable
// slug-to-index mapping the carousel and the route layer both consume.
package project

import (
	"fmt"
	"regexp"
)

// Project is one portfolio entry, one slide in the carousel.
type Project struct {
	Slug        string   `yaml:"slug" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Tagline     string   `yaml:"tagline" json:"tagline"`
	Description string   `yaml:"description" json:"description"` // markdown
	Tags        []string `yaml:"tags" json:"tags"`
	Year        int      `yaml:"year" json:"year"`
	Order       int      `yaml:"order" json:"order"`
	NDA         bool     `yaml:"nda" json:"nda"`
	Accent      string   `yaml:"accent" json:"accent"` // hex color for the showcase card
	Repo        string   `yaml:"repo" json:"repo"`
	URL         string   `yaml:"url" json:"url"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate checks the fields a project file must carry.
func (p *Project) Validate() error {
	if p.Slug == "" {
		return fmt.Errorf("project is missing a slug")
	}
	if !slugPattern.MatchString(p.Slug) {
		return fmt.Errorf("invalid slug %q: lowercase letters, digits, and hyphens only", p.Slug)
	}
	if p.Title == "" {
		return fmt.Errorf("project %q is missing a title", p.Slug)
	}
	return nil
}
