// Package dashdoc converts a published Markdown API reference into a Dash
// docset: a rendered HTML page plus a searchIndex table mapping symbol names
// to in-page anchors.
//
// This package contains domain types, interfaces and the extraction core
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// goldmark/, goquery/).
package dashdoc
