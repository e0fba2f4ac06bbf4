package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/dashdoc"
)

// DefaultMarkdownEndpoint is GitHub's Markdown rendering API.
const DefaultMarkdownEndpoint = "https://api.github.com/markdown"

// DefaultUserAgent identifies requests to the rendering API.
const DefaultUserAgent = "dashdoc docset generator"

// Ensure Renderer implements dashdoc.Renderer at compile time.
var _ dashdoc.Renderer = (*Renderer)(nil)

// Renderer converts Markdown to HTML using the GitHub Markdown API.
type Renderer struct {
	client    *http.Client
	endpoint  string
	token     string
	userAgent string
	timeout   time.Duration
	logger    *slog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithEndpoint overrides the rendering API URL.
func WithEndpoint(url string) RendererOption {
	return func(r *Renderer) {
		r.endpoint = url
	}
}

// WithToken authenticates requests, raising GitHub's rate limit.
func WithToken(token string) RendererOption {
	return func(r *Renderer) {
		r.token = token
	}
}

// WithRenderTimeout sets the timeout for rendering requests.
// Zero, the default, leaves the timeout to the HTTP client.
func WithRenderTimeout(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// WithRenderLogger sets the logger used to report the remaining rate limit.
func WithRenderLogger(logger *slog.Logger) RendererOption {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// NewRenderer creates a new GitHub API Renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		endpoint:  DefaultMarkdownEndpoint,
		userAgent: DefaultUserAgent,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.client = &http.Client{
		Timeout: r.timeout,
	}

	return r
}

// Render posts req to the rendering API and returns the HTML.
// An empty response is reported as EINVALID.
func (r *Renderer) Render(ctx context.Context, req dashdoc.RenderRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("User-Agent", r.userAgent)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/html")
	if r.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	LogRateLimit(r.logger, resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, r.endpoint, truncate(string(body), 200))
	}

	if len(body) == 0 {
		return "", dashdoc.Errorf(dashdoc.EINVALID, "empty HTML from %s", r.endpoint)
	}

	return string(body), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
