package sourcetree

import (
	"strings"

	"i18nextract/internal/domain/entities"
)

// parseElement consumes one markup element; pos is at '<'. Closing tags are
// matched leniently: any close tag ends the current element.
func (s *scanner) parseElement() (*entities.SyntaxNode, error) {
	line, col := s.line, s.col
	s.next() // <
	name := s.readName()
	elem := &entities.SyntaxNode{Kind: entities.KindElement, Name: name, Line: line, Column: col}

	for {
		s.skipTrivia()
		if s.eof() {
			return nil, s.errorf("unterminated element <%s>", name)
		}
		r := s.peek()
		switch {
		case r == '/':
			s.next()
			if s.peek() == '>' {
				s.next()
				return elem, nil // self-closing
			}
		case r == '>':
			s.next()
			if err := s.parseElementChildren(elem); err != nil {
				return nil, err
			}
			return elem, nil
		case isIdentStart(r):
			attr, err := s.parseAttribute()
			if err != nil {
				return nil, err
			}
			elem.Attrs = append(elem.Attrs, attr)
		case r == '{':
			// spread attributes: not statically resolvable, skip
			s.next()
			if _, err := s.scanRegion(func() bool { return s.peek() == '}' }); err != nil {
				return nil, err
			}
			if !s.eof() {
				s.next()
			}
		default:
			s.next()
		}
	}
}

func (s *scanner) parseAttribute() (*entities.SyntaxNode, error) {
	line, col := s.line, s.col
	attr := &entities.SyntaxNode{Kind: entities.KindProperty, Name: s.readName(), Line: line, Column: col}

	s.skipTrivia()
	if s.peek() != '=' {
		return attr, nil // bare attribute
	}
	s.next()
	s.skipTrivia()

	switch r := s.peek(); {
	case r == '\'' || r == '"':
		value, err := s.readString(r)
		if err != nil {
			return nil, err
		}
		attr.Children = []*entities.SyntaxNode{{
			Kind: entities.KindString, Value: value, Line: line, Column: col,
		}}
	case r == '{':
		s.next()
		value, err := s.parseArg(func() bool { return s.peek() == '}' })
		if err != nil {
			return nil, err
		}
		if !s.eof() && s.peek() == '}' {
			s.next()
		}
		attr.Children = []*entities.SyntaxNode{value}
	}
	return attr, nil
}

// parseElementChildren consumes element content up to the closing tag.
// Inside markup, any '<'+identifier is a nested element, whatever its case.
func (s *scanner) parseElementChildren(elem *entities.SyntaxNode) error {
	var text strings.Builder
	flush := func() {
		if strings.TrimSpace(text.String()) != "" {
			elem.Children = append(elem.Children, &entities.SyntaxNode{
				Kind: entities.KindText, Value: text.String(),
			})
		}
		text.Reset()
	}

	for !s.eof() {
		r := s.peek()
		switch {
		case r == '<' && s.peekAt(1) == '/':
			flush()
			s.next()
			s.next()
			s.readName()
			s.skipTrivia()
			if !s.eof() && s.peek() == '>' {
				s.next()
			}
			return nil
		case r == '<' && isIdentPart(s.peekAt(1)):
			flush()
			child, err := s.parseElement()
			if err != nil {
				return err
			}
			elem.Children = append(elem.Children, child)
		case r == '<' && s.peekAt(1) == '>':
			// fragment: flatten its content into this element
			flush()
			s.next()
			s.next()
		case r == '{':
			flush()
			s.next()
			value, err := s.parseArg(func() bool { return s.peek() == '}' })
			if err != nil {
				return err
			}
			if !s.eof() && s.peek() == '}' {
				s.next()
			}
			elem.Children = append(elem.Children, value)
		default:
			text.WriteRune(s.next())
		}
	}
	return s.errorf("unterminated element <%s>", elem.Name)
}
