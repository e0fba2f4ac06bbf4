package dashdoc

import "context"

// DefaultPlatformFamily is the docset keyword used by the browser for
// search scoping when none is configured.
const DefaultPlatformFamily = "dashdoc"

// DocsetInfo holds the metadata written to a docset's Info.plist.
type DocsetInfo struct {
	Identifier     string
	Name           string
	PlatformFamily string
	IndexFile      string
}

// InfoEncoder serializes docset metadata.
type InfoEncoder interface {
	EncodeInfo(info *DocsetInfo) ([]byte, error)
}

// Bundle persists the generated files of a docset.
type Bundle interface {
	// WriteDocument atomically writes a page into the documents directory.
	WriteDocument(ctx context.Context, name string, content []byte) error

	// WriteInfo writes the encoded Info.plist.
	WriteInfo(ctx context.Context, content []byte) error
}
