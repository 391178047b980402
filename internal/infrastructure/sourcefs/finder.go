// Package sourcefs resolves input glob patterns to source files.
package sourcefs

import (
	"context"
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"i18nextract/internal/ports/output"
)

// Ensure Finder implements the output.SourceFinder port.
var _ output.SourceFinder = (*Finder)(nil)

// Finder globs an afero filesystem with doublestar patterns
// (`src/**/*.{ts,tsx}` style).
type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns every file matching any pattern, deduplicated and sorted so
// traversal order is stable across runs.
func (f *Finder) Find(ctx context.Context, patterns []string) ([]string, error) {
	fsys := afero.NewIOFS(f.fs)
	seen := map[string]bool{}
	var files []string

	for _, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
