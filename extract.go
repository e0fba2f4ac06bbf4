package dashdoc

import (
	"iter"
	"regexp"
)

// Reference is a (label, anchor) pair found in a Markdown document.
// Anchor includes the leading "#".
type Reference struct {
	Label  string
	Anchor string
}

var (
	// guideLinkRe matches top-level list items linking to an in-page anchor,
	// e.g. "- [Introduction](#introduction)" or "- [`any`](#any)".
	guideLinkRe = regexp.MustCompile("\n- *\\[`?([^`}\\]]*)`?\\]\\((#[A-Za-z-]*)\\)")

	// methodLinkRe matches list items at any indentation whose label is
	// backtick-quoted, e.g. "  - [`any.validate(value)`](#anyvalidatevalue)".
	methodLinkRe = regexp.MustCompile("\n" + space + "*-" + space + "*\\[`([A-Za-z.]*.*)`\\]\\((#[A-Za-z-]*)\\)")
)

// space matches JavaScript's \s, which unlike RE2's also covers \v and
// Unicode spaces.
const space = `[\s\x0b\p{Zs}\x{2028}\x{2029}\x{feff}]`

// ExtractReferences lazily scans markdown for in-page links. Guide-style
// links are yielded first, then method-style links, each in document order.
// The two passes are not deduplicated against each other.
func ExtractReferences(markdown string) iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		for _, re := range []*regexp.Regexp{guideLinkRe, methodLinkRe} {
			for pos := 0; pos < len(markdown); {
				loc := re.FindStringSubmatchIndex(markdown[pos:])
				if loc == nil {
					break
				}
				ref := Reference{
					Label:  markdown[pos+loc[2] : pos+loc[3]],
					Anchor: markdown[pos+loc[4] : pos+loc[5]],
				}
				pos += loc[1]
				if !yield(ref) {
					return
				}
			}
		}
	}
}
