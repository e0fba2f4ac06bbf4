package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dashdoc"
)

// Ensure LoggingIndexService implements dashdoc.IndexService.
var _ dashdoc.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with logging. Individual
// inserts are logged at debug level.
type LoggingIndexService struct {
	next   dashdoc.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next dashdoc.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// ResetIndex delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) ResetIndex(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("reset index",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ResetIndex(ctx)
}

// CreateEntry delegates to the wrapped service and logs the entry.
func (s *LoggingIndexService) CreateEntry(ctx context.Context, entry *dashdoc.Entry) (err error) {
	defer func() {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "create entry",
			"name", entry.Name,
			"type", entry.Type,
			"path", entry.Path,
			"err", err,
		)
	}()
	return s.next.CreateEntry(ctx, entry)
}

// FindEntries delegates to the wrapped service and logs the count.
func (s *LoggingIndexService) FindEntries(ctx context.Context) (entries []*dashdoc.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find entries",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx)
}
