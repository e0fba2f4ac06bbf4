// Package goquery inspects rendered docset pages with goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dashdoc"
)

// Ensure Auditor implements dashdoc.AnchorAuditor at compile time.
var _ dashdoc.AnchorAuditor = (*Auditor)(nil)

// Auditor finds index entries whose fragment has no named anchor in a page.
type Auditor struct{}

// NewAuditor creates a new Auditor.
func NewAuditor() *Auditor {
	return &Auditor{}
}

// MissingAnchors returns the entries whose path fragment matches no
// <a name> element in html, in input order.
func (a *Auditor) MissingAnchors(html string, entries []*dashdoc.Entry) ([]*dashdoc.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	names := make(map[string]bool)
	doc.Find("a[name]").Each(func(_ int, sel *goquery.Selection) {
		if name, ok := sel.Attr("name"); ok {
			names[name] = true
		}
	})

	var missing []*dashdoc.Entry
	for _, entry := range entries {
		if !names[dashdoc.Fragment(entry.Path)] {
			missing = append(missing, entry)
		}
	}
	return missing, nil
}

// CountDashAnchors returns the number of dash anchors in html.
func (a *Auditor) CountDashAnchors(html string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, dashdoc.Errorf(dashdoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc.Find("a.dashAnchor").Length(), nil
}
