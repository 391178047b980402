package output

import "i18nextract/internal/domain/entities"

// TreeProvider builds a syntax tree from raw source text. Implementations
// pick the dialect from the file extension.
type TreeProvider interface {
	// Parse returns the program node for src. An error means the file could
	// not be turned into a tree at all; the caller skips it with a warning.
	Parse(file string, src []byte) (*entities.SyntaxNode, error)
}
