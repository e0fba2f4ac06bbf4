package dashdoc

import "context"

// Fetcher retrieves raw documents by URL.
type Fetcher interface {
	// Fetch returns the body of the document at url.
	// An empty body is an error.
	Fetch(ctx context.Context, url string) (string, error)
}

// RenderRequest is the input of a Markdown rendering service.
type RenderRequest struct {
	Text    string `json:"text"`
	Mode    string `json:"mode"`
	Context string `json:"context"`
}

// RenderModeMarkdown renders the text as a plain Markdown document.
const RenderModeMarkdown = "markdown"

// Renderer converts Markdown to HTML.
type Renderer interface {
	// Render returns the HTML for req. An empty result is an error.
	Render(ctx context.Context, req RenderRequest) (string, error)
}

// AnchorAuditor reports index entries that have no anchor in a page.
type AnchorAuditor interface {
	MissingAnchors(html string, entries []*Entry) ([]*Entry, error)

	// CountDashAnchors returns the number of dash anchors in html.
	CountDashAnchors(html string) (int, error)
}
