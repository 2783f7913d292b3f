package writer

import "strings"

// escapeXML makes a cell or shared-string value safe for inclusion in
// worksheet XML. The five markup characters become entities; control bytes
// that are not legal in XML 1.0 (everything below 0x20 except TAB, LF and
// CR) are replaced with '?'.
func escapeXML(s string) string {
	if !needsEscaping(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		case '\t', '\n', '\r':
			b.WriteByte(c)
		default:
			if c < 0x20 {
				b.WriteByte('?')
			} else {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

func needsEscaping(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '&' || c == '<' || c == '>' || c == '"' || c == '\'':
			return true
		case c < 0x20 && c != '\t' && c != '\n' && c != '\r':
			return true
		}
	}
	return false
}
