// Package sourcetree builds the generic syntax tree consumed by the
// recognizer from JS/TS/JSX source text.
//
// It is a tolerant single-pass scanner, not a full ECMAScript parser: it
// models calls, object literals, literals and component elements precisely
// and skips everything else while respecting nesting. No importable Go
// module parses TSX, so this is the in-repo stand-in for that collaborator.
package sourcetree

import (
	"i18nextract/internal/domain/entities"
	"i18nextract/internal/ports/output"
)

// Ensure Provider implements the output.TreeProvider port.
var _ output.TreeProvider = (*Provider)(nil)

type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

// Parse builds the program node for src. The error path is reserved for
// files the scanner cannot make sense of (unterminated literals).
func (p *Provider) Parse(file string, src []byte) (*entities.SyntaxNode, error) {
	s := newScanner(file, src)
	children, err := s.scanRegion(func() bool { return false })
	if err != nil {
		return nil, err
	}
	return &entities.SyntaxNode{Kind: entities.KindProgram, Children: children}, nil
}

// parseCall consumes the argument list; pos is at '('.
func (s *scanner) parseCall(name string, line, col int) (*entities.SyntaxNode, error) {
	call := &entities.SyntaxNode{Kind: entities.KindCall, Name: name, Line: line, Column: col}
	s.next() // (
	for {
		s.skipTrivia()
		if s.eof() {
			return nil, s.errorf("unterminated call to %s", name)
		}
		if s.peek() == ')' {
			s.next()
			return call, nil
		}
		arg, err := s.parseArg(func() bool {
			r := s.peek()
			return r == ',' || r == ')'
		})
		if err != nil {
			return nil, err
		}
		call.Children = append(call.Children, arg)
		s.skipTrivia()
		if s.peek() == ',' {
			s.next()
		}
	}
}

// parseArg parses one argument/value expression. A clean literal, object,
// call or element becomes a typed node; anything else (or a literal followed
// by more expression) degrades to KindUnknown with any nested calls and
// elements attached as children.
func (s *scanner) parseArg(stop func() bool) (*entities.SyntaxNode, error) {
	s.skipTrivia()
	line, col := s.line, s.col
	var node *entities.SyntaxNode

	switch r := s.peek(); {
	case r == '\'' || r == '"':
		value, err := s.readString(r)
		if err != nil {
			return nil, err
		}
		node = &entities.SyntaxNode{Kind: entities.KindString, Value: value, Line: line, Column: col}
	case r == '`':
		value, dynamic, nested, err := s.readTemplate()
		if err != nil {
			return nil, err
		}
		if dynamic {
			node = &entities.SyntaxNode{Kind: entities.KindUnknown, Line: line, Column: col, Children: nested}
		} else {
			node = &entities.SyntaxNode{Kind: entities.KindString, Value: value, Line: line, Column: col}
		}
	case r == '{':
		obj, err := s.parseObject()
		if err != nil {
			return nil, err
		}
		node = obj
	case r == '<' && isElementStart(s.peekAt(1)):
		elem, err := s.parseElement()
		if err != nil {
			return nil, err
		}
		node = elem
	case r == '-' || (r >= '0' && r <= '9'):
		var neg string
		if r == '-' {
			s.next()
			neg = "-"
		}
		node = &entities.SyntaxNode{Kind: entities.KindNumber, Value: neg + s.readNumber(), Line: line, Column: col}
	case isIdentStart(r):
		name := s.readName()
		s.skipTrivia()
		if s.peek() == '(' {
			call, err := s.parseCall(name, line, col)
			if err != nil {
				return nil, err
			}
			node = call
		} else if name == "true" || name == "false" {
			node = &entities.SyntaxNode{Kind: entities.KindBool, Value: name, Line: line, Column: col}
		} else {
			node = &entities.SyntaxNode{Kind: entities.KindIdent, Name: name, Line: line, Column: col}
		}
	}

	// if the expression continues past what was parsed (e.g. "a" + b), the
	// value is not statically known after all and degrades to unknown
	s.skipTrivia()
	clean := s.eof() || stop()
	s.exprBefore = node != nil
	rest, err := s.scanRegion(stop)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return &entities.SyntaxNode{Kind: entities.KindUnknown, Line: line, Column: col, Children: rest}, nil
	}
	if !clean {
		node = &entities.SyntaxNode{
			Kind: entities.KindUnknown, Line: line, Column: col,
			Children: append([]*entities.SyntaxNode{node}, rest...),
		}
	}
	return node, nil
}

// parseObject consumes an object literal; pos is at '{'.
func (s *scanner) parseObject() (*entities.SyntaxNode, error) {
	line, col := s.line, s.col
	obj := &entities.SyntaxNode{Kind: entities.KindObject, Line: line, Column: col}
	s.next() // {
	for {
		s.skipTrivia()
		if s.eof() {
			return nil, s.errorf("unterminated object literal")
		}
		switch r := s.peek(); {
		case r == '}':
			s.next()
			return obj, nil
		case r == ',':
			s.next()
		case r == '\'' || r == '"' || isIdentStart(r):
			prop, err := s.parseProperty(r)
			if err != nil {
				return nil, err
			}
			if prop != nil {
				obj.Children = append(obj.Children, prop)
			}
		default:
			// spread, computed key or other unsupported member: skip it
			if _, err := s.scanRegion(func() bool {
				r := s.peek()
				return r == ',' || r == '}'
			}); err != nil {
				return nil, err
			}
		}
	}
}

func (s *scanner) parseProperty(first rune) (*entities.SyntaxNode, error) {
	line, col := s.line, s.col
	var name string
	if first == '\'' || first == '"' {
		v, err := s.readString(first)
		if err != nil {
			return nil, err
		}
		name = v
	} else {
		name = s.readName()
	}
	prop := &entities.SyntaxNode{Kind: entities.KindProperty, Name: name, Line: line, Column: col}

	s.skipTrivia()
	switch s.peek() {
	case ':':
		s.next()
		value, err := s.parseArg(func() bool {
			r := s.peek()
			return r == ',' || r == '}'
		})
		if err != nil {
			return nil, err
		}
		prop.Children = []*entities.SyntaxNode{value}
	case ',', '}':
		// shorthand property: presence is all the recognizer needs
	default:
		// method or other member: skip to the end of it
		if _, err := s.scanRegion(func() bool {
			r := s.peek()
			return r == ',' || r == '}'
		}); err != nil {
			return nil, err
		}
	}
	return prop, nil
}
