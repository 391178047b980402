package sourcetree

import (
	"fmt"
	"strings"
	"unicode"

	"i18nextract/internal/domain/entities"
)

// scanner walks source text once, building syntax nodes for the constructs
// the recognizer cares about (calls, object literals, markup elements,
// literals) and skipping everything else while honoring string, template and
// bracket nesting.
type scanner struct {
	src  []rune
	pos  int
	line int
	col  int
	file string

	// exprBefore seeds the next scanRegion: true when the region begins right
	// after a token that can end an expression, which rules out markup there
	// ("a < B" is a comparison, not an element).
	exprBefore bool
}

func newScanner(file string, src []byte) *scanner {
	return &scanner{src: []rune(string(src)), line: 1, col: 1, file: file}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(offset int) rune {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

func (s *scanner) next() rune {
	r := s.src[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// skipTrivia consumes whitespace and comments.
func (s *scanner) skipTrivia() {
	for !s.eof() {
		r := s.peek()
		switch {
		case unicode.IsSpace(r):
			s.next()
		case r == '/' && s.peekAt(1) == '/':
			for !s.eof() && s.peek() != '\n' {
				s.next()
			}
		case r == '/' && s.peekAt(1) == '*':
			s.next()
			s.next()
			for !s.eof() {
				if s.peek() == '*' && s.peekAt(1) == '/' {
					s.next()
					s.next()
					break
				}
				s.next()
			}
		default:
			return
		}
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// readName reads a dotted identifier chain (i18n.t, props.t, Trans).
func (s *scanner) readName() string {
	var b strings.Builder
	for !s.eof() {
		r := s.peek()
		if isIdentPart(r) {
			b.WriteRune(r)
			s.next()
			continue
		}
		if r == '.' && isIdentStart(s.peekAt(1)) {
			b.WriteRune(r)
			s.next()
			continue
		}
		break
	}
	return b.String()
}

// readString consumes a quoted literal and returns its unescaped value.
func (s *scanner) readString(quote rune) (string, error) {
	s.next() // opening quote
	var b strings.Builder
	for !s.eof() {
		r := s.next()
		switch r {
		case quote:
			return b.String(), nil
		case '\\':
			if s.eof() {
				return "", s.errorf("unterminated string literal")
			}
			esc := s.next()
			switch esc {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			default:
				b.WriteRune(esc)
			}
		case '\n':
			return "", s.errorf("unterminated string literal")
		default:
			b.WriteRune(r)
		}
	}
	return "", s.errorf("unterminated string literal")
}

// readTemplate consumes a template literal. Substitutions make the value
// dynamic; their contents are still scanned for nested calls.
func (s *scanner) readTemplate() (value string, dynamic bool, nested []*entities.SyntaxNode, err error) {
	s.next() // opening backtick
	var b strings.Builder
	for !s.eof() {
		r := s.peek()
		switch {
		case r == '`':
			s.next()
			return b.String(), dynamic, nested, nil
		case r == '\\':
			s.next()
			if !s.eof() {
				b.WriteRune(s.next())
			}
		case r == '$' && s.peekAt(1) == '{':
			dynamic = true
			s.next()
			s.next()
			inner, err := s.scanRegion(func() bool { return s.peek() == '}' })
			if err != nil {
				return "", false, nil, err
			}
			nested = append(nested, inner...)
			if !s.eof() {
				s.next() // closing brace
			}
		default:
			b.WriteRune(s.next())
		}
	}
	return "", false, nil, s.errorf("unterminated template literal")
}

func (s *scanner) readNumber() string {
	var b strings.Builder
	for !s.eof() {
		r := s.peek()
		if unicode.IsDigit(r) || r == '.' || r == 'x' || r == 'X' || r == 'e' || r == 'E' ||
			(b.Len() > 0 && (r == '+' || r == '-')) ||
			(r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') {
			b.WriteRune(s.next())
			continue
		}
		break
	}
	return b.String()
}

func (s *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%s:%d:%d: %s", s.file, s.line, s.col, fmt.Sprintf(format, args...))
}

// scanRegion scans forward collecting calls and elements until stop reports
// true at nesting depth zero (or EOF). Strings, templates and brackets are
// honored so stop runes inside them do not terminate the region.
func (s *scanner) scanRegion(stop func() bool) ([]*entities.SyntaxNode, error) {
	var nodes []*entities.SyntaxNode
	depth := 0
	prevExpr := s.exprBefore
	s.exprBefore = false
	for !s.eof() {
		s.skipTrivia()
		if s.eof() {
			break
		}
		if depth == 0 && stop() {
			break
		}
		r := s.peek()
		switch {
		case r == '\'' || r == '"':
			if _, err := s.readString(r); err != nil {
				return nil, err
			}
			prevExpr = true
		case r == '`':
			_, _, nested, err := s.readTemplate()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, nested...)
			prevExpr = true
		case isIdentStart(r):
			line, col := s.line, s.col
			name := s.readName()
			s.skipTrivia()
			if s.peek() == '(' {
				call, err := s.parseCall(name, line, col)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, call)
				prevExpr = true
			} else {
				prevExpr = !jsKeyword(name)
			}
		case r == '<' && isElementStart(s.peekAt(1)) && !prevExpr:
			elem, err := s.parseElement()
			if err != nil {
				return nil, err
			}
			if elem != nil {
				nodes = append(nodes, elem)
			}
			prevExpr = true
		case r == '(' || r == '[' || r == '{':
			depth++
			s.next()
			prevExpr = false
		case r == ')' || r == ']' || r == '}':
			if depth == 0 {
				// unbalanced close belongs to the caller
				return nodes, nil
			}
			depth--
			s.next()
			prevExpr = true
		default:
			s.next()
			prevExpr = isIdentPart(r)
		}
	}
	return nodes, nil
}

// jsKeyword lists identifiers after which an expression (and thus markup) may
// begin.
func jsKeyword(name string) bool {
	switch name {
	case "return", "case", "default", "do", "else", "in", "of", "new",
		"typeof", "instanceof", "void", "delete", "throw", "yield", "await":
		return true
	}
	return false
}

// isElementStart accepts component tags only: the uppercase heuristic keeps
// comparison operators from being mistaken for markup.
func isElementStart(r rune) bool {
	return unicode.IsUpper(r)
}
