package dashdoc

import (
	"context"
	"iter"
)

// DefaultDocumentFile is the name of the rendered page inside the docset.
const DefaultDocumentFile = "reference.html"

// BuildIndex classifies every reference and inserts the resulting entries
// into s, with paths relative to documentFile. Repeated references are
// absorbed by the store. It returns the number of references processed.
func BuildIndex(ctx context.Context, s IndexService, c *Classifier, documentFile string, refs iter.Seq[Reference]) (int, error) {
	n := 0
	for ref := range refs {
		cl := c.Classify(ref.Label, ref.Anchor)
		entry := &Entry{
			Name: cl.Name,
			Type: cl.Type,
			Path: documentFile + cl.Anchor,
		}
		if err := s.CreateEntry(ctx, entry); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
