package dashdoc

import "strings"

// Source describes the reference document a docset is generated from.
type Source struct {
	// URL of the raw Markdown document.
	URL string

	// Marker is the line separating front matter from the documented body.
	// Everything up to and including the first occurrence is discarded.
	Marker string

	// Title replaces the discarded front matter.
	Title string

	// DocumentFile is the name of the rendered page inside the docset.
	DocumentFile string
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	if s.Marker == "" {
		return Errorf(EINVALID, "front matter marker required")
	}
	if s.DocumentFile == "" {
		return Errorf(EINVALID, "document file required")
	}
	return nil
}

// StripFrontMatter discards markdown up to and including the first marker
// and prepends title. It returns EINVALID if the marker is missing.
func StripFrontMatter(markdown, marker, title string) (string, error) {
	_, body, ok := strings.Cut(markdown, marker)
	if !ok {
		return "", Errorf(EINVALID, "front matter marker %q not found", marker)
	}
	return title + body, nil
}

// Template wraps a rendered body with static header and footer text.
type Template struct {
	Header string
	Footer string
}

// Wrap returns body enclosed by the header and footer.
func (t Template) Wrap(body string) string {
	return t.Header + body + t.Footer
}
