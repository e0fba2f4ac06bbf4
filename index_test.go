package dashdoc_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	t.Parallel()

	t.Run("classifies references and prefixes paths", func(t *testing.T) {
		t.Parallel()

		var got []dashdoc.Entry
		svc := &mock.IndexService{
			CreateEntryFn: func(_ context.Context, entry *dashdoc.Entry) error {
				got = append(got, *entry)
				return nil
			},
		}
		refs := slices.Values([]dashdoc.Reference{
			{Label: "Introduction", Anchor: "#introduction"},
			{Label: "string()", Anchor: "#string"},
			{Label: "any", Anchor: "#any"},
		})

		n, err := dashdoc.BuildIndex(context.Background(), svc, dashdoc.NewClassifier("Joi"), "reference.html", refs)

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []dashdoc.Entry{
			{Name: "Introduction", Type: dashdoc.EntryGuide, Path: "reference.html#introduction"},
			{Name: "Joi.string()", Type: dashdoc.EntryMethod, Path: "reference.html#string"},
			{Name: "Joi.any()", Type: dashdoc.EntryConstructor, Path: "reference.html#any"},
		}, got)
	})

	t.Run("builds from extracted references", func(t *testing.T) {
		t.Parallel()

		var got []dashdoc.Entry
		svc := &mock.IndexService{
			CreateEntryFn: func(_ context.Context, entry *dashdoc.Entry) error {
				got = append(got, *entry)
				return nil
			},
		}
		md := "# Joi Reference\n- [`string()`](#string)\n"

		n, err := dashdoc.BuildIndex(context.Background(), svc, dashdoc.NewClassifier("Joi"), "reference.html", dashdoc.ExtractReferences(md))

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		want := dashdoc.Entry{Name: "Joi.string()", Type: dashdoc.EntryMethod, Path: "reference.html#string"}
		assert.Equal(t, []dashdoc.Entry{want, want}, got)
	})

	t.Run("stops at first store error", func(t *testing.T) {
		t.Parallel()

		calls := 0
		svc := &mock.IndexService{
			CreateEntryFn: func(_ context.Context, entry *dashdoc.Entry) error {
				calls++
				return errors.New("disk full")
			},
		}
		refs := slices.Values([]dashdoc.Reference{
			{Label: "a", Anchor: "#a"},
			{Label: "b", Anchor: "#b"},
		})

		n, err := dashdoc.BuildIndex(context.Background(), svc, dashdoc.NewClassifier("Joi"), "reference.html", refs)

		require.EqualError(t, err, "disk full")
		assert.Equal(t, 0, n)
		assert.Equal(t, 1, calls)
	})
}

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	valid := dashdoc.Entry{Name: "Joi.any()", Type: dashdoc.EntryConstructor, Path: "reference.html#any"}
	require.NoError(t, valid.Validate())

	unnamed := dashdoc.Entry{Type: dashdoc.EntryGuide, Path: "reference.html#empty"}
	require.NoError(t, unnamed.Validate())

	invalid := []dashdoc.Entry{
		{Name: "a", Type: "Function", Path: "reference.html#a"},
		{Name: "a", Type: dashdoc.EntryGuide},
	}
	for _, e := range invalid {
		err := e.Validate()
		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err), "entry %+v", e)
	}
}
