package entities

import "strings"

// Occurrence is a raw extraction candidate as found at one call site or
// markup element. It only lives until normalization.
type Occurrence struct {
	File         string
	Line         int
	Column       int
	RawNamespace string
	RawKey       string
	DefaultValue string
	HasDefault   bool
	Context      string
	HasContext   bool
	HasCount     bool
}

// Key is a normalized translation key. Path never contains namespace or
// context information; those are applied to the last segment at merge time.
type Key struct {
	Namespace string
	Path      []string
	Context   string
	// PluralCategory is empty until the plural expander has run for a locale.
	PluralCategory string

	DefaultValue string
	HasDefault   bool
	HasCount     bool
	File         string
}

// JoinPath returns the key path joined with sep. Context and plural category
// are part of the last segment once Finalize has been applied, so the joined
// path of a finalized key is its identity within a namespace.
func (k Key) JoinPath(sep string) string {
	return strings.Join(k.Path, sep)
}

// Finalize bakes context and plural category into the last path segment and
// returns the resulting path. The receiver is not modified.
func (k Key) Finalize(contextSeparator, pluralSeparator string) []string {
	path := make([]string, len(k.Path))
	copy(path, k.Path)
	last := len(path) - 1
	if k.Context != "" {
		path[last] += contextSeparator + k.Context
	}
	if k.PluralCategory != "" {
		path[last] += pluralSeparator + k.PluralCategory
	}
	return path
}
