package sqlite

import (
	"context"

	"github.com/fwojciec/dashdoc"
)

// Compile-time interface verification.
var _ dashdoc.IndexService = (*IndexService)(nil)

// IndexService implements dashdoc.IndexService using the docset searchIndex table.
type IndexService struct {
	db *DB
}

// NewIndexService creates a new IndexService.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db}
}

// ResetIndex drops and recreates the searchIndex table.
func (s *IndexService) ResetIndex(ctx context.Context) error {
	return s.db.resetSchema(ctx)
}

// CreateEntry inserts an entry, ignoring exact (name, type, path) repeats.
func (s *IndexService) CreateEntry(ctx context.Context, entry *dashdoc.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO searchIndex(name, type, path)
		VALUES (?, ?, ?)
	`, entry.Name, string(entry.Type), entry.Path)
	if err != nil {
		return err
	}

	if n, err := result.RowsAffected(); err == nil && n == 1 {
		if id, err := result.LastInsertId(); err == nil {
			entry.ID = id
		}
	}

	return nil
}

// FindEntries returns every entry in insertion order.
func (s *IndexService) FindEntries(ctx context.Context) ([]*dashdoc.Entry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, type, path FROM searchIndex ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*dashdoc.Entry
	for rows.Next() {
		var entry dashdoc.Entry
		var typ string
		if err := rows.Scan(&entry.ID, &entry.Name, &typ, &entry.Path); err != nil {
			return nil, err
		}
		entry.Type = dashdoc.EntryType(typ)
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
