package mock

import (
	"context"

	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.Bundle = (*Bundle)(nil)

// Bundle is a mock implementation of dashdoc.Bundle.
type Bundle struct {
	WriteDocumentFn func(ctx context.Context, name string, content []byte) error
	WriteInfoFn     func(ctx context.Context, content []byte) error
}

func (b *Bundle) WriteDocument(ctx context.Context, name string, content []byte) error {
	return b.WriteDocumentFn(ctx, name, content)
}

func (b *Bundle) WriteInfo(ctx context.Context, content []byte) error {
	return b.WriteInfoFn(ctx, content)
}

var _ dashdoc.InfoEncoder = (*InfoEncoder)(nil)

// InfoEncoder is a mock implementation of dashdoc.InfoEncoder.
type InfoEncoder struct {
	EncodeInfoFn func(info *dashdoc.DocsetInfo) ([]byte, error)
}

func (e *InfoEncoder) EncodeInfo(info *dashdoc.DocsetInfo) ([]byte, error) {
	return e.EncodeInfoFn(info)
}
