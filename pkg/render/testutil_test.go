package render

import (
	"strings"
	"testing"
)

// tagAttrs returns the attributes of every <tag> start tag in s, in document
// order. Bare (boolean) attributes map to "". Values are returned as written,
// still escaped.
func tagAttrs(t *testing.T, s, tag string) []map[string]string {
	t.Helper()

	var result []map[string]string
	open := "<" + tag
	for i := 0; ; {
		idx := strings.Index(s[i:], open)
		if idx == -1 {
			return result
		}
		pos := i + idx + len(open)
		i = pos
		if pos >= len(s) || (s[pos] != ' ' && s[pos] != '>' && s[pos] != '/') {
			continue
		}
		attrs, end := parseAttrs(t, s, pos)
		result = append(result, attrs)
		i = end
	}
}

// firstTagAttrs is tagAttrs for the first <tag>; it fails when there is none.
func firstTagAttrs(t *testing.T, s, tag string) map[string]string {
	t.Helper()

	all := tagAttrs(t, s, tag)
	if len(all) == 0 {
		t.Fatalf("no <%s> in %q", tag, s)
	}
	return all[0]
}

// parseAttrs reads attributes from s[pos:] up to the end of the start tag.
func parseAttrs(t *testing.T, s string, pos int) (map[string]string, int) {
	t.Helper()

	attrs := make(map[string]string)
	for pos < len(s) {
		switch c := s[pos]; {
		case c == ' ':
			pos++
		case c == '>':
			return attrs, pos + 1
		case strings.HasPrefix(s[pos:], "/>"):
			return attrs, pos + 2
		default:
			end := pos + strings.IndexAny(s[pos:], " =>/")
			if end < pos {
				t.Fatalf("unterminated tag in %q", s)
			}
			name := s[pos:end]
			pos = end
			if s[pos] != '=' {
				attrs[name] = ""
				continue
			}
			pos++
			if pos >= len(s) || (s[pos] != '"' && s[pos] != '\'') {
				t.Fatalf("expected quote for %q in %q", name, s)
			}
			quote := s[pos]
			pos++
			endRel := strings.IndexByte(s[pos:], quote)
			if endRel == -1 {
				t.Fatalf("unterminated attribute %q in %q", name, s)
			}
			attrs[name] = s[pos : pos+endRel]
			pos += endRel + 1
		}
	}
	t.Fatalf("unterminated tag in %q", s)
	return nil, pos
}
