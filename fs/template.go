package fs

import (
	"embed"
	"os"

	"github.com/fwojciec/dashdoc"
)

//go:embed static/header.html static/footer.html
var static embed.FS

// LoadTemplate returns the page template. Empty paths fall back to the
// built-in header and footer.
func LoadTemplate(headerPath, footerPath string) (dashdoc.Template, error) {
	header, err := readTemplate(headerPath, "static/header.html")
	if err != nil {
		return dashdoc.Template{}, err
	}
	footer, err := readTemplate(footerPath, "static/footer.html")
	if err != nil {
		return dashdoc.Template{}, err
	}
	return dashdoc.Template{Header: header, Footer: footer}, nil
}

func readTemplate(path, fallback string) (string, error) {
	var b []byte
	var err error
	if path != "" {
		b, err = os.ReadFile(path)
	} else {
		b, err = static.ReadFile(fallback)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}
