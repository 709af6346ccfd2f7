// Package route keeps the address and the carousel's stable index in
// agreement, in both directions, without feedback loops. The path-segment
// scheme /project/<slug> is the single canonical encoding.
package route

import "strings"

const projectPrefix = "/project/"

// Codec translates between project slugs and paths.
type Codec struct{}

// Encode returns the path for a slug.
func (Codec) Encode(slug string) string {
	return projectPrefix + slug
}

// Decode extracts the slug from a path. It reports false for paths outside
// the project scheme, which the reconciler ignores as foreign.
func (Codec) Decode(path string) (string, bool) {
	if !strings.HasPrefix(path, projectPrefix) {
		return "", false
	}
	slug := strings.TrimPrefix(path, projectPrefix)
	if slug == "" || strings.Contains(slug, "/") {
		return "", false
	}
	return slug, true
}
