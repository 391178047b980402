package entities

// SyntaxKind identifies the shape of a syntax tree node. The tree is a
// deliberately small model of a source file: just enough structure for the
// recognizer to find translation calls and translation-rendering elements.
type SyntaxKind uint8

const (
	// KindProgram is the root of a file's tree.
	KindProgram SyntaxKind = iota
	// KindCall is a function call; Name holds the (possibly dotted) callee.
	KindCall
	// KindString is a string literal, including substitution-free templates.
	KindString
	// KindNumber is a numeric literal.
	KindNumber
	// KindBool is a boolean literal.
	KindBool
	// KindIdent is an identifier reference.
	KindIdent
	// KindObject is an object literal.
	KindObject
	// KindProperty is one object property or markup attribute.
	KindProperty
	// KindElement is a markup element; Name holds the tag name.
	KindElement
	// KindText is literal markup text content.
	KindText
	// KindUnknown is any expression the provider could not classify.
	KindUnknown
)

// SyntaxNode is one node of the externally built syntax tree.
//
// Call nodes list their arguments as Children. Object nodes list Property
// children; a Property's single child is its value (a shorthand property has
// no child). Element nodes carry attributes in Attrs (Property nodes) and
// content in Children.
type SyntaxNode struct {
	Kind     SyntaxKind
	Name     string
	Value    string
	Line     int
	Column   int
	Attrs    []*SyntaxNode
	Children []*SyntaxNode
}

// Attr returns the element attribute with the given name, or nil.
func (n *SyntaxNode) Attr(name string) *SyntaxNode {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Prop returns the object property with the given name, or nil.
func (n *SyntaxNode) Prop(name string) *SyntaxNode {
	for _, c := range n.Children {
		if c.Kind == KindProperty && c.Name == name {
			return c
		}
	}
	return nil
}

// ValueNode returns a property's value node, or nil for shorthand properties.
func (n *SyntaxNode) ValueNode() *SyntaxNode {
	if n.Kind == KindProperty && len(n.Children) == 1 {
		return n.Children[0]
	}
	return nil
}
