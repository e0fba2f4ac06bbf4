package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/docgen"
	"github.com/fwojciec/dashdoc/etree"
	"github.com/fwojciec/dashdoc/fs"
	"github.com/fwojciec/dashdoc/goldmark"
	"github.com/fwojciec/dashdoc/goquery"
	dashhttp "github.com/fwojciec/dashdoc/http"
	dashslog "github.com/fwojciec/dashdoc/slog"
	"github.com/fwojciec/dashdoc/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the docset index. Opened by Run().
	DB *sqlite.DB

	// Services for end-to-end testing. When nil, HTTP implementations are used.
	Fetcher  dashdoc.Fetcher
	Renderer dashdoc.Renderer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dashdoc"),
		kong.Description("Convert a Markdown API reference into a Dash docset."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dashdoc --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	cfg, err := buildConfig(cli)
	if err != nil {
		return err
	}
	deps.Config = cfg

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Docset = fs.NewDocset(cfg.Output, cfg.Name)

	switch {
	case strings.HasPrefix(cmd, "generate"):
		if err := cfg.Validate(); err != nil {
			return err
		}
		removed, err := deps.Docset.Prepare(cfg.DocumentFile)
		if err != nil {
			return fmt.Errorf("failed to prepare docset at %q: %w", deps.Docset.Root(), err)
		}
		if removed {
			deps.Logger.Info("previous index deleted", "path", deps.Docset.IndexPath())
		}
		if err := m.openIndex(deps); err != nil {
			return err
		}
		defer m.Close()

		template, err := fs.LoadTemplate(cfg.Header, cfg.Footer)
		if err != nil {
			return fmt.Errorf("failed to load page template: %w", err)
		}

		deps.Generator = &docgen.Generator{
			Fetcher:    dashslog.NewLoggingFetcher(m.fetcher(cli, deps.Logger), deps.Logger),
			Renderer:   dashslog.NewLoggingRenderer(m.renderer(cli, cfg, deps.Logger), deps.Logger),
			Index:      deps.Index,
			Bundle:     deps.Docset,
			Info:       etree.NewInfoEncoder(),
			Auditor:    goquery.NewAuditor(),
			Classifier: cfg.Classifier(),
			Template:   template,
			Logger:     deps.Logger,
		}

	case strings.HasPrefix(cmd, "entries"):
		if !deps.Docset.Exists() {
			return dashdoc.Errorf(dashdoc.ENOTFOUND, "no docset index at %s. Run 'dashdoc generate' first", deps.Docset.IndexPath())
		}
		if err := m.openIndex(deps); err != nil {
			return err
		}
		defer m.Close()
	}

	return kongCtx.Run(deps)
}

func (m *Main) openIndex(deps *Dependencies) error {
	m.DB = sqlite.NewDB(deps.Docset.IndexPath())
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open index at %q: %w", deps.Docset.IndexPath(), err)
	}
	deps.Index = dashslog.NewLoggingIndexService(sqlite.NewIndexService(m.DB), deps.Logger)
	return nil
}

func (m *Main) fetcher(cli *CLI, logger *slog.Logger) dashdoc.Fetcher {
	next := m.Fetcher
	if next == nil {
		next = dashhttp.NewFetcher(
			dashhttp.WithTimeout(cli.Generate.Timeout),
			dashhttp.WithLogger(logger),
		)
	}
	return dashhttp.NewRetryFetcher(next,
		dashhttp.WithRetryDelays(dashhttp.BackoffDelays(max(cli.Generate.Retries, 0))...),
		dashhttp.WithRateLimit(cli.Generate.Rate),
		dashhttp.WithRetryLogger(logger),
	)
}

func (m *Main) renderer(cli *CLI, cfg *Config, logger *slog.Logger) dashdoc.Renderer {
	if m.Renderer != nil {
		return m.Renderer
	}
	if cfg.Renderer == RendererGoldmark {
		return goldmark.NewRenderer()
	}
	return dashhttp.NewRenderer(
		dashhttp.WithToken(cli.Generate.Token),
		dashhttp.WithRenderTimeout(cli.Generate.Timeout),
		dashhttp.WithRenderLogger(logger),
	)
}

// buildConfig layers the configuration: built-in defaults, then the TOML
// file, then flags and environment variables.
func buildConfig(cli *CLI) (*Config, error) {
	cfg := DefaultConfig()
	if cli.Config != "" {
		if err := LoadConfig(cli.Config, &cfg); err != nil {
			return nil, err
		}
	}

	override(&cfg.Output, cli.Output)
	override(&cfg.Name, cli.Name)
	override(&cfg.Version, cli.Generate.Version)
	override(&cfg.SourceURL, cli.Generate.URL)
	override(&cfg.Renderer, cli.Generate.Renderer)
	override(&cfg.Header, cli.Generate.Header)
	override(&cfg.Footer, cli.Generate.Footer)
	return &cfg, nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
