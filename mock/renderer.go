package mock

import (
	"context"

	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of dashdoc.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, req dashdoc.RenderRequest) (string, error)
}

func (r *Renderer) Render(ctx context.Context, req dashdoc.RenderRequest) (string, error) {
	return r.RenderFn(ctx, req)
}

var _ dashdoc.AnchorAuditor = (*AnchorAuditor)(nil)

// AnchorAuditor is a mock implementation of dashdoc.AnchorAuditor.
type AnchorAuditor struct {
	MissingAnchorsFn   func(html string, entries []*dashdoc.Entry) ([]*dashdoc.Entry, error)
	CountDashAnchorsFn func(html string) (int, error)
}

func (a *AnchorAuditor) MissingAnchors(html string, entries []*dashdoc.Entry) ([]*dashdoc.Entry, error) {
	return a.MissingAnchorsFn(html, entries)
}

func (a *AnchorAuditor) CountDashAnchors(html string) (int, error) {
	return a.CountDashAnchorsFn(html)
}
