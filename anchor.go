package dashdoc

import (
	"strings"
)

// DashAnchor returns the machine-readable marker the documentation browser
// uses to locate entry inside the page.
func DashAnchor(entry *Entry) string {
	return `<a name="//apple_ref/cpp/` + string(entry.Type) + "/" + EscapeComponent(entry.Name) + `" class="dashAnchor"></a>`
}

// Fragment returns the part of path after the first "#", or "" if there is none.
func Fragment(path string) string {
	_, frag, _ := strings.Cut(path, "#")
	return frag
}

// InjectAnchors inserts a dash anchor immediately before every
// <a name="fragment" tag matching an entry's path fragment. Entries are
// applied in order. An empty fragment targets <a name="" tags. No other
// text is modified.
func InjectAnchors(html string, entries []*Entry) string {
	for _, entry := range entries {
		frag := Fragment(entry.Path)
		term := `<a name="` + frag + `"`
		html = strings.ReplaceAll(html, term, DashAnchor(entry)+term)
	}
	return html
}

// StripUserContent removes the "user-content-" prefix GitHub adds to
// rendered ids and names so anchors match the source fragments.
func StripUserContent(html string) string {
	return strings.ReplaceAll(html, "user-content-", "")
}

// EscapeComponent percent-encodes s the way JavaScript's encodeURIComponent
// does: letters, digits and -_.!~*'() are kept, every other byte is escaped.
func EscapeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
