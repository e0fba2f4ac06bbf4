// Package goldmark provides an offline dashdoc.Renderer backed by goldmark.
package goldmark

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/fwojciec/dashdoc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Ensure Renderer implements dashdoc.Renderer at compile time.
var _ dashdoc.Renderer = (*Renderer)(nil)

// Renderer converts Markdown to HTML locally. Headings carry an
// <a name="id"> anchor like GitHub's renderer so fragments in the
// document resolve the same way.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer with GitHub Flavored Markdown enabled.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			// Reference documents embed raw HTML such as images and anchors.
			html.WithUnsafe(),
			renderer.WithNodeRenderers(util.Prioritized(&headingRenderer{}, 100)),
		),
	)
	return &Renderer{md: md}
}

// Render converts req.Text to HTML. Mode and Context are ignored.
func (r *Renderer) Render(ctx context.Context, req dashdoc.RenderRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", dashdoc.Errorf(dashdoc.EINVALID, "empty markdown input")
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(req.Text), &buf); err != nil {
		return "", err
	}

	if buf.Len() == 0 {
		return "", dashdoc.Errorf(dashdoc.EINVALID, "empty HTML output")
	}

	return buf.String(), nil
}

// headingRenderer renders headings with a leading named anchor.
type headingRenderer struct{}

func (r *headingRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
}

func (r *headingRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	level := strconv.Itoa(n.Level)

	if !entering {
		_, _ = w.WriteString("</h" + level + ">\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<h" + level)
	id, ok := headingID(n)
	if !ok {
		_ = w.WriteByte('>')
		return ast.WalkContinue, nil
	}

	escaped := util.EscapeHTML(id)
	_, _ = w.WriteString(` id="`)
	_, _ = w.Write(escaped)
	_, _ = w.WriteString(`"><a name="`)
	_, _ = w.Write(escaped)
	_, _ = w.WriteString(`" class="anchor" href="#`)
	_, _ = w.Write(escaped)
	_, _ = w.WriteString(`"></a>`)
	return ast.WalkContinue, nil
}

func headingID(n *ast.Heading) ([]byte, bool) {
	v, ok := n.AttributeString("id")
	if !ok {
		return nil, false
	}
	switch id := v.(type) {
	case []byte:
		return id, len(id) > 0
	case string:
		return []byte(id), id != ""
	}
	return nil, false
}
