package project

import "sort"

// Directory is the immutable, visibility-filtered project set backing one
// carousel mount. Slide index i always refers to the same project for the
// lifetime of a Directory; content reloads build a fresh one.
type Directory struct {
	projects []Project
	bySlug   map[string]int
}

// NewDirectory builds a directory from projects, dropping NDA entries unless
// includeNDA is set. Projects order by their Order field, ties by slug, so
// links stay stable across file renames.
func NewDirectory(projects []Project, includeNDA bool) *Directory {
	visible := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.NDA && !includeNDA {
			continue
		}
		visible = append(visible, p)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].Order != visible[j].Order {
			return visible[i].Order < visible[j].Order
		}
		return visible[i].Slug < visible[j].Slug
	})

	bySlug := make(map[string]int, len(visible))
	for i, p := range visible {
		bySlug[p.Slug] = i
	}
	return &Directory{projects: visible, bySlug: bySlug}
}

// Len returns the number of visible projects.
func (d *Directory) Len() int {
	return len(d.projects)
}

// List returns the visible projects in slide order.
func (d *Directory) List() []Project {
	out := make([]Project, len(d.projects))
	copy(out, d.projects)
	return out
}

// At returns the project at slide index i.
func (d *Directory) At(i int) (Project, bool) {
	if i < 0 || i >= len(d.projects) {
		return Project{}, false
	}
	return d.projects[i], true
}

// IndexOf translates a slug into its slide index.
func (d *Directory) IndexOf(slug string) (int, bool) {
	i, ok := d.bySlug[slug]
	return i, ok
}

// IdentityOf translates a slide index into its slug.
func (d *Directory) IdentityOf(i int) (string, bool) {
	if i < 0 || i >= len(d.projects) {
		return "", false
	}
	return d.projects[i].Slug, true
}
