// Package fs provides the on-disk layout of a docset bundle.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/dashdoc"
)

// IndexFile is the name of the search index inside Contents/Resources.
const IndexFile = "docSet.dsidx"

// Ensure Docset implements dashdoc.Bundle at compile time.
var _ dashdoc.Bundle = (*Docset)(nil)

// Docset manages the directory tree of a docset:
//
//	<baseDir>/<name>.docset/Contents/Info.plist
//	<baseDir>/<name>.docset/Contents/Resources/docSet.dsidx
//	<baseDir>/<name>.docset/Contents/Resources/Documents/
type Docset struct {
	baseDir string
	name    string
}

// NewDocset creates a new Docset rooted at baseDir/name.docset.
func NewDocset(baseDir, name string) *Docset {
	return &Docset{
		baseDir: baseDir,
		name:    name,
	}
}

// Root returns the docset directory.
func (d *Docset) Root() string {
	return filepath.Join(d.baseDir, d.name+".docset")
}

// ContentsDir returns the Contents directory.
func (d *Docset) ContentsDir() string {
	return filepath.Join(d.Root(), "Contents")
}

// ResourcesDir returns the Contents/Resources directory.
func (d *Docset) ResourcesDir() string {
	return filepath.Join(d.ContentsDir(), "Resources")
}

// DocumentsDir returns the directory holding rendered pages.
func (d *Docset) DocumentsDir() string {
	return filepath.Join(d.ResourcesDir(), "Documents")
}

// IndexPath returns the path of the search index database.
func (d *Docset) IndexPath() string {
	return filepath.Join(d.ResourcesDir(), IndexFile)
}

// InfoPath returns the path of Info.plist.
func (d *Docset) InfoPath() string {
	return filepath.Join(d.ContentsDir(), "Info.plist")
}

// Prepare creates the directory tree and removes the previous index, the
// page named document and Info.plist, so a failed run never leaves a new
// index next to old output. It reports whether an index was removed.
func (d *Docset) Prepare(document string) (bool, error) {
	if !validDocumentName(document) {
		return false, dashdoc.Errorf(dashdoc.EINVALID, "invalid document name %q", document)
	}
	if err := os.MkdirAll(d.DocumentsDir(), 0755); err != nil {
		return false, err
	}

	removed := false
	stale := []string{
		d.IndexPath(),
		d.IndexPath() + "-journal",
		filepath.Join(d.DocumentsDir(), document),
		d.InfoPath(),
	}
	for _, path := range stale {
		err := os.Remove(path)
		switch {
		case err == nil:
			removed = removed || path == d.IndexPath()
		case !errors.Is(err, os.ErrNotExist):
			return false, err
		}
	}
	return removed, nil
}

// Exists reports whether the docset has an index.
func (d *Docset) Exists() bool {
	_, err := os.Stat(d.IndexPath())
	return err == nil
}

// WriteDocument writes content to Documents/name. The file is written to a
// temporary sibling and renamed into place, so a failed write never leaves
// a partial page behind.
func (d *Docset) WriteDocument(ctx context.Context, name string, content []byte) error {
	if !validDocumentName(name) {
		return dashdoc.Errorf(dashdoc.EINVALID, "invalid document name %q", name)
	}
	return writeAtomic(filepath.Join(d.DocumentsDir(), name), content)
}

// WriteInfo writes Contents/Info.plist.
func (d *Docset) WriteInfo(ctx context.Context, content []byte) error {
	return writeAtomic(d.InfoPath(), content)
}

func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

func validDocumentName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}
