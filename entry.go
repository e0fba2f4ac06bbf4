package dashdoc

import "context"

// EntryType is the documentation category of an index entry.
type EntryType string

// EntryType constants understood by the documentation browser.
const (
	EntryGuide       EntryType = "Guide"
	EntryProperty    EntryType = "Property"
	EntryConstructor EntryType = "Constructor"
	EntryMethod      EntryType = "Method"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	switch t {
	case EntryGuide, EntryProperty, EntryConstructor, EntryMethod:
		return true
	}
	return false
}

// Entry is a row of the docset search index.
// The triple (Name, Type, Path) is unique within an index.
type Entry struct {
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Type EntryType `json:"type"`
	Path string    `json:"path"` // document file plus fragment, e.g. reference.html#string
}

// Validate returns an error if the entry contains invalid fields. An empty
// name is valid: a link with an empty label still indexes its anchor.
func (e *Entry) Validate() error {
	if !e.Type.Valid() {
		return Errorf(EINVALID, "invalid entry type %q", e.Type)
	}
	if e.Path == "" {
		return Errorf(EINVALID, "entry path required")
	}
	return nil
}

// IndexService represents the persistent search index of a docset.
type IndexService interface {
	// ResetIndex drops the index and recreates an empty one.
	ResetIndex(ctx context.Context) error

	// CreateEntry inserts an entry. Inserting an entry whose
	// (name, type, path) already exists is a silent no-op.
	CreateEntry(ctx context.Context, entry *Entry) error

	// FindEntries returns every entry in the index.
	FindEntries(ctx context.Context) ([]*Entry, error)
}
