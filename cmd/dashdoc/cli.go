package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/dashdoc"
	"github.com/fwojciec/dashdoc/docgen"
	"github.com/fwojciec/dashdoc/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    *Config
	Docset    *fs.Docset
	Index     dashdoc.IndexService
	Generator *docgen.Generator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" type:"path" env:"DASHDOC_CONFIG" help:"TOML file describing the reference document"`
	Output  string `short:"o" env:"DASHDOC_OUTPUT" help:"Directory holding the docset (default: current directory)"`
	Name    string `short:"n" env:"DASHDOC_NAME" help:"Docset name"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Generate GenerateCmd `cmd:"" help:"Generate the docset from the reference document"`
	Entries  EntriesCmd  `cmd:"" help:"List the entries of a generated docset index"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Version  string        `arg:"" optional:"" help:"Reference version substituted into the source URL"`
	URL      string        `short:"u" env:"DASHDOC_URL" help:"Source document URL ({version} is substituted)"`
	Renderer string        `short:"r" env:"DASHDOC_RENDERER" help:"Markdown renderer: github or goldmark"`
	Token    string        `env:"GITHUB_TOKEN" help:"GitHub token for the Markdown API"`
	Timeout  time.Duration `short:"t" help:"HTTP timeout (0 leaves it to the client)"`
	Retries  int           `help:"Retries for transient fetch failures (default: fail on the first error)"`
	Rate     float64       `help:"Maximum fetch requests per second (0 for no limit)"`
	Header   string        `type:"path" help:"File with HTML placed before the rendered page"`
	Footer   string        `type:"path" help:"File with HTML placed after the rendered page"`
}

// EntriesCmd is the "entries" subcommand.
type EntriesCmd struct {
	Type string `short:"t" help:"Only list entries of this type (Guide, Property, Constructor, Method)"`
}
