package formatter

import (
	"encoding/json"

	"github.com/ovalkan/folio/internal/project"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// DirectoryOutput is the JSON document for a project listing
type DirectoryOutput struct {
	Count    int             `json:"count"`
	Projects []ProjectOutput `json:"projects"`
}

// ProjectOutput is one project entry with its route
type ProjectOutput struct {
	Index   int      `json:"index"`
	Slug    string   `json:"slug"`
	Path    string   `json:"path"`
	Title   string   `json:"title"`
	Tagline string   `json:"tagline,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Year    int      `json:"year,omitempty"`
	NDA     bool     `json:"nda,omitempty"`
	Repo    string   `json:"repo,omitempty"`
	URL     string   `json:"url,omitempty"`
}

func (f *jsonFormatter) Format(dir *project.Directory) ([]byte, error) {
	output := &DirectoryOutput{
		Count:    dir.Len(),
		Projects: make([]ProjectOutput, 0, dir.Len()),
	}
	for i, p := range dir.List() {
		output.Projects = append(output.Projects, ProjectOutput{
			Index:   i,
			Slug:    p.Slug,
			Path:    "/project/" + p.Slug,
			Title:   p.Title,
			Tagline: p.Tagline,
			Tags:    p.Tags,
			Year:    p.Year,
			NDA:     p.NDA,
			Repo:    p.Repo,
			URL:     p.URL,
		})
	}

	return json.MarshalIndent(output, "", "  ")
}
