package goquery_test

import (
	"testing"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Auditor implements dashdoc.AnchorAuditor at compile time.
var _ dashdoc.AnchorAuditor = (*goquery.Auditor)(nil)

func TestAuditor_MissingAnchors(t *testing.T) {
	t.Parallel()

	t.Run("reports entries without anchor", func(t *testing.T) {
		t.Parallel()

		html := `<h2><a name="any"></a>any</h2><h2><a id="string"></a>string</h2>`
		entries := []*dashdoc.Entry{
			{Name: "Joi.any()", Type: dashdoc.EntryConstructor, Path: "reference.html#any"},
			{Name: "Joi.string()", Type: dashdoc.EntryMethod, Path: "reference.html#string"},
			{Name: "Introduction", Type: dashdoc.EntryGuide, Path: "reference.html#introduction"},
		}

		missing, err := goquery.NewAuditor().MissingAnchors(html, entries)

		require.NoError(t, err)
		assert.Equal(t, []*dashdoc.Entry{entries[1], entries[2]}, missing)
	})

	t.Run("reports nothing when every anchor exists", func(t *testing.T) {
		t.Parallel()

		html := `<a name="a"></a><p><a name="b">b</a></p>`
		entries := []*dashdoc.Entry{
			{Name: "A", Type: dashdoc.EntryGuide, Path: "reference.html#a"},
			{Name: "B", Type: dashdoc.EntryGuide, Path: "reference.html#b"},
		}

		missing, err := goquery.NewAuditor().MissingAnchors(html, entries)

		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		missing, err := goquery.NewAuditor().MissingAnchors("", nil)

		require.NoError(t, err)
		assert.Empty(t, missing)
	})
}

func TestAuditor_CountDashAnchors(t *testing.T) {
	t.Parallel()

	entries := []*dashdoc.Entry{
		{Name: "Joi.any()", Type: dashdoc.EntryConstructor, Path: "reference.html#any"},
		{Name: "any", Type: dashdoc.EntryGuide, Path: "reference.html#any"},
	}
	html := dashdoc.InjectAnchors(`<h2><a name="any"></a>any</h2>`, entries)

	n, err := goquery.NewAuditor().CountDashAnchors(html)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
