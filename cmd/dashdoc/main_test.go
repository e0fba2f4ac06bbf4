package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/dashdoc"
	main "github.com/fwojciec/dashdoc/cmd/dashdoc"
	"github.com/fwojciec/dashdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMarker = `<img src="https://raw.github.com/hapijs/joi/master/images/validation.png" align="right" />`

const testMarkdown = "# joi\n\nBadges and intro.\n" + testMarker + "\n" +
	"- [General usage](#general-usage)\n" +
	"- [`string()`](#string)\n" +
	"  - [`string.min(limit)`](#stringminlimit)\n" +
	"\n## General usage\n\nUsage text.\n" +
	"\n### `string()`\n\nString schema.\n" +
	"\n#### `string.min(limit)`\n\nMinimum length.\n"

func testContext() context.Context {
	return context.Background()
}

// stubFetcher returns a fetcher serving testMarkdown and recording URLs.
func stubFetcher(urls *[]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			*urls = append(*urls, url)
			return testMarkdown, nil
		},
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints help without arguments", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(testContext(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "generate")
		assert.Contains(t, stdout.String(), "entries")
	})

	t.Run("prints help on request", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(testContext(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage: dashdoc")
	})

	t.Run("generates docset with goldmark renderer", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var urls []string
		m := main.NewMain()
		m.Fetcher = stubFetcher(&urls)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := m.Run(testContext(), []string{"generate", "10.6.0", "-o", dir, "-r", "goldmark"}, stdout, stderr)

		require.NoError(t, err, stderr.String())
		assert.Equal(t, []string{"https://raw.githubusercontent.com/hapijs/joi/v10.6.0/API.md"}, urls)
		assert.Contains(t, stdout.String(), "Generated "+filepath.Join(dir, "joi.docset"))
		assert.Contains(t, stdout.String(), "entries:    3")
		assert.Contains(t, stdout.String(), "anchors:    3")

		page, err := os.ReadFile(filepath.Join(dir, "joi.docset", "Contents", "Resources", "Documents", "reference.html"))
		require.NoError(t, err)
		assert.Contains(t, string(page), `<a name="//apple_ref/cpp/Method/Joi.string()" class="dashAnchor"></a><a name="string"`)
		assert.Contains(t, string(page), `<a name="//apple_ref/cpp/Guide/General%20usage" class="dashAnchor"></a><a name="general-usage"`)
		assert.Contains(t, string(page), "Joi Reference")
		assert.NotContains(t, string(page), "Badges and intro.")

		info, err := os.ReadFile(filepath.Join(dir, "joi.docset", "Contents", "Info.plist"))
		require.NoError(t, err)
		assert.Contains(t, string(info), "<string>joi</string>")

		_, err = os.Stat(filepath.Join(dir, "joi.docset", "Contents", "Resources", "docSet.dsidx"))
		require.NoError(t, err)
	})

	t.Run("regenerating replaces the index", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var urls []string
		args := []string{"generate", "10.6.0", "-o", dir, "-r", "goldmark"}

		for range 2 {
			m := main.NewMain()
			m.Fetcher = stubFetcher(&urls)
			require.NoError(t, m.Run(testContext(), args, &bytes.Buffer{}, &bytes.Buffer{}))
		}

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(testContext(), []string{"entries", "-o", dir}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, []string{"Guide", "General", "usage", "reference.html#general-usage"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"Method", "Joi.string()", "reference.html#string"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"Method", "Joi.string().min(limit)", "reference.html#stringminlimit"}, strings.Fields(lines[2]))
	})

	t.Run("failed run leaves no stale page", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var urls []string
		m := main.NewMain()
		m.Fetcher = stubFetcher(&urls)
		require.NoError(t, m.Run(testContext(), []string{"generate", "10.6.0", "-o", dir, "-r", "goldmark"}, &bytes.Buffer{}, &bytes.Buffer{}))
		page := filepath.Join(dir, "joi.docset", "Contents", "Resources", "Documents", "reference.html")
		require.FileExists(t, page)

		m = main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "no marker here", nil
			},
		}
		err := m.Run(testContext(), []string{"generate", "10.6.0", "-o", dir, "-r", "goldmark"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.NoFileExists(t, page)
		assert.NoFileExists(t, filepath.Join(dir, "joi.docset", "Contents", "Info.plist"))
	})

	t.Run("uses injected renderer with github defaults", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var urls []string
		var got dashdoc.RenderRequest
		m := main.NewMain()
		m.Fetcher = stubFetcher(&urls)
		m.Renderer = &mock.Renderer{
			RenderFn: func(ctx context.Context, req dashdoc.RenderRequest) (string, error) {
				got = req
				return `<h3><a id="user-content-string" class="anchor" name="user-content-string" href="#string"></a>string()</h3>`, nil
			},
		}

		err := m.Run(testContext(), []string{"generate", "10.6.0", "-o", dir}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, dashdoc.RenderModeMarkdown, got.Mode)
		assert.True(t, strings.HasPrefix(got.Text, "# Joi Reference\n"))
	})

	t.Run("fails without version", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var urls []string
		m := main.NewMain()
		m.Fetcher = stubFetcher(&urls)

		err := m.Run(testContext(), []string{"generate", "-o", dir}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
		assert.Empty(t, urls)
		_, statErr := os.Stat(filepath.Join(dir, "joi.docset"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("reports fetch failure", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", dashdoc.Errorf(dashdoc.ENOTFOUND, "no such release")
			},
		}

		stderr := &bytes.Buffer{}
		err := m.Run(testContext(), []string{"generate", "99.0.0", "-o", t.TempDir(), "-r", "goldmark"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, dashdoc.ENOTFOUND, dashdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: no such release")
	})

	t.Run("fetches once by default", func(t *testing.T) {
		t.Parallel()

		calls := 0
		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				if calls == 1 {
					return "", errors.New("connection reset")
				}
				return testMarkdown, nil
			},
		}

		stderr := &bytes.Buffer{}
		err := m.Run(testContext(), []string{"generate", "10.6.0", "-o", t.TempDir(), "-r", "goldmark"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, dashdoc.EINTERNAL, dashdoc.ErrorCode(err))
		assert.Equal(t, 1, calls)
		assert.Contains(t, stderr.String(), "error: fetch: connection reset")
	})

	t.Run("retries fetch when asked", func(t *testing.T) {
		t.Parallel()

		calls := 0
		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				if calls == 1 {
					return "", errors.New("connection reset")
				}
				return testMarkdown, nil
			},
		}

		err := m.Run(testContext(), []string{"generate", "10.6.0", "-o", t.TempDir(), "-r", "goldmark", "--retries", "1"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("entries requires a generated docset", func(t *testing.T) {
		t.Parallel()

		err := main.NewMain().Run(testContext(), []string{"entries", "-o", t.TempDir()}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Equal(t, dashdoc.ENOTFOUND, dashdoc.ErrorCode(err))
	})

	t.Run("entries filters by type", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var urls []string
		m := main.NewMain()
		m.Fetcher = stubFetcher(&urls)
		require.NoError(t, m.Run(testContext(), []string{"generate", "10.6.0", "-o", dir, "-r", "goldmark"}, &bytes.Buffer{}, &bytes.Buffer{}))

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(testContext(), []string{"entries", "-o", dir, "-t", "Guide"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "General usage")
		assert.NotContains(t, stdout.String(), "Joi.string()")
	})

	t.Run("entries rejects unknown type", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var urls []string
		m := main.NewMain()
		m.Fetcher = stubFetcher(&urls)
		require.NoError(t, m.Run(testContext(), []string{"generate", "10.6.0", "-o", dir, "-r", "goldmark"}, &bytes.Buffer{}, &bytes.Buffer{}))

		stderr := &bytes.Buffer{}
		err := main.NewMain().Run(testContext(), []string{"entries", "-o", dir, "-t", "Function"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, dashdoc.EINVALID, dashdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), `unknown entry type "Function"`)
	})
}
