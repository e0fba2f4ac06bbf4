// Package docgen orchestrates the conversion of a Markdown reference into a
// docset. Stages run strictly in sequence and the first failure aborts the
// run.
package docgen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/dashdoc"
)

// Generator converts one reference document into a docset.
type Generator struct {
	Fetcher    dashdoc.Fetcher
	Renderer   dashdoc.Renderer
	Index      dashdoc.IndexService
	Bundle     dashdoc.Bundle
	Info       dashdoc.InfoEncoder
	Auditor    dashdoc.AnchorAuditor // optional
	Classifier *dashdoc.Classifier
	Template   dashdoc.Template
	Logger     *slog.Logger
}

// Result holds the outcome of a generation run.
type Result struct {
	References int
	Entries    int
	Anchors    int // dash anchors in the page, counted only with an Auditor
	Missing    int
	Bytes      int
}

// Run fetches src, builds the index, renders and annotates the page and
// writes the bundle. Nothing is written to the bundle unless every earlier
// stage succeeded.
func (g *Generator) Run(ctx context.Context, src dashdoc.Source, info *dashdoc.DocsetInfo) (*Result, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	logger := g.logger()

	if err := g.Index.ResetIndex(ctx); err != nil {
		return nil, fmt.Errorf("reset index: %w", err)
	}

	raw, err := g.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	logger.Info("raw markdown fetched", "url", src.URL)

	markdown, err := dashdoc.StripFrontMatter(raw, src.Marker, src.Title)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	refs, err := dashdoc.BuildIndex(ctx, g.Index, g.Classifier, src.DocumentFile, dashdoc.ExtractReferences(markdown))
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	logger.Info("search index created", "references", refs)

	html, err := g.Renderer.Render(ctx, dashdoc.RenderRequest{
		Text: markdown,
		Mode: dashdoc.RenderModeMarkdown,
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	logger.Info("html generated from markdown")

	html = dashdoc.StripUserContent(html)

	entries, err := g.Index.FindEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	html = dashdoc.InjectAnchors(html, entries)
	logger.Info("dash anchors added", "entries", len(entries))

	anchors, missing := 0, 0
	if g.Auditor != nil {
		orphans, err := g.Auditor.MissingAnchors(html, entries)
		if err != nil {
			return nil, fmt.Errorf("audit: %w", err)
		}
		for _, e := range orphans {
			logger.Warn("entry has no anchor", "name", e.Name, "type", e.Type, "path", e.Path)
		}
		missing = len(orphans)

		if anchors, err = g.Auditor.CountDashAnchors(html); err != nil {
			return nil, fmt.Errorf("audit: %w", err)
		}
		logger.Info("dash anchors counted", "anchors", anchors)
	}

	page := []byte(g.Template.Wrap(html))
	if err := g.Bundle.WriteDocument(ctx, src.DocumentFile, page); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	logger.Info("document written", "file", src.DocumentFile, "bytes", len(page))

	if info != nil {
		plist, err := g.Info.EncodeInfo(info)
		if err != nil {
			return nil, fmt.Errorf("write: %w", err)
		}
		if err := g.Bundle.WriteInfo(ctx, plist); err != nil {
			return nil, fmt.Errorf("write: %w", err)
		}
	}

	logger.Info("generation completed")

	return &Result{
		References: refs,
		Entries:    len(entries),
		Anchors:    anchors,
		Missing:    missing,
		Bytes:      len(page),
	}, nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.DiscardHandler)
}
