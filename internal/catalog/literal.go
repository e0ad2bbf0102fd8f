package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
)

var (
	errNoDeclaration = errors.New("declaration not found")
	errNotArray      = errors.New("declaration is not an array literal")
	errUnterminated  = errors.New("unterminated array literal")
)

// extractArrayLiteral returns the source text of the array assigned to
// variable, e.g. `export const ITEMS_DATA = [ ... ];`. Brackets inside
// strings and comments are ignored.
func extractArrayLiteral(src []byte, variable string) ([]byte, error) {
	decl := regexp.MustCompile(`(?:^|[\s;])(?:export\s+)?(?:const|let|var)\s+` + regexp.QuoteMeta(variable) + `\s*=\s*`)
	loc := decl.FindIndex(src)
	if loc == nil {
		return nil, fmt.Errorf("%s: %w", variable, errNoDeclaration)
	}

	start := loc[1]
	if start >= len(src) || src[start] != '[' {
		return nil, fmt.Errorf("%s: %w", variable, errNotArray)
	}

	end, err := matchBracket(src, start)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", variable, err)
	}
	return src[start : end+1], nil
}

// matchBracket returns the index of the ']' closing the '[' at open.
func matchBracket(src []byte, open int) (int, error) {
	depth := 0
	for i := open; i < len(src); i++ {
		switch c := src[i]; c {
		case '"', '\'', '`':
			i = skipString(src, i, c)
		case '/':
			if i+1 < len(src) && src[i+1] == '/' {
				i = skipLineComment(src, i)
			} else if i+1 < len(src) && src[i+1] == '*' {
				i = skipBlockComment(src, i)
			}
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				if c != ']' {
					return 0, errUnterminated
				}
				return i, nil
			}
		}
	}
	return 0, errUnterminated
}

// skipString returns the index of the quote closing the string at i, or the
// last index when the string never closes.
func skipString(src []byte, i int, quote byte) int {
	for i++; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}
	return len(src) - 1
}

func skipLineComment(src []byte, i int) int {
	for ; i < len(src); i++ {
		if src[i] == '\n' {
			return i
		}
	}
	return len(src) - 1
}

func skipBlockComment(src []byte, i int) int {
	for i += 2; i+1 < len(src); i++ {
		if src[i] == '*' && src[i+1] == '/' {
			return i + 1
		}
	}
	return len(src) - 1
}

// normalizeLiteral rewrites a JavaScript array literal into the subset the
// JSON5 decoder accepts: comments are dropped and single-quoted or template
// strings become double-quoted strings.
func normalizeLiteral(src []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(src))
	for i := 0; i < len(src); i++ {
		switch c := src[i]; {
		case c == '"':
			end := skipString(src, i, c)
			buf.Write(src[i : end+1])
			i = end
		case c == '\'' || c == '`':
			end := skipString(src, i, c)
			body := src[i+1:]
			if end > i {
				body = src[i+1 : end]
			}
			writeDoubleQuoted(&buf, body)
			i = end
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			end := skipLineComment(src, i)
			buf.WriteByte(' ')
			if src[end] == '\n' {
				buf.WriteByte('\n')
			}
			i = end
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipBlockComment(src, i)
			buf.WriteByte(' ')
		default:
			buf.WriteByte(c)
		}
	}
	return buf.Bytes()
}

// writeDoubleQuoted writes the body of a single-quoted or template string as
// a double-quoted one.
func writeDoubleQuoted(buf *bytes.Buffer, body []byte) {
	buf.WriteByte('"')
	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '\\':
			if i+1 < len(body) {
				i++
				if next := body[i]; next == '\'' || next == '`' {
					buf.WriteByte(next)
				} else {
					buf.WriteByte('\\')
					buf.WriteByte(next)
				}
			}
		case '"':
			buf.WriteString(`\"`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
}
