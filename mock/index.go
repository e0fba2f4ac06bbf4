package mock

import (
	"context"

	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of dashdoc.IndexService.
type IndexService struct {
	ResetIndexFn  func(ctx context.Context) error
	CreateEntryFn func(ctx context.Context, entry *dashdoc.Entry) error
	FindEntriesFn func(ctx context.Context) ([]*dashdoc.Entry, error)
}

func (s *IndexService) ResetIndex(ctx context.Context) error {
	return s.ResetIndexFn(ctx)
}

func (s *IndexService) CreateEntry(ctx context.Context, entry *dashdoc.Entry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *IndexService) FindEntries(ctx context.Context) ([]*dashdoc.Entry, error) {
	return s.FindEntriesFn(ctx)
}
