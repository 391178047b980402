package output

import "context"

// SourceFinder resolves the configured input globs to source file paths in
// deterministic traversal order.
type SourceFinder interface {
	Find(ctx context.Context, patterns []string) ([]string, error)
}
