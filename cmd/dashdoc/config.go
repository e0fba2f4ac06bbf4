package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/dashdoc"
)

// Renderer names accepted in configuration.
const (
	RendererGitHub   = "github"
	RendererGoldmark = "goldmark"
)

// Config describes the reference document and the docset built from it.
type Config struct {
	Name           string   `toml:"name"`
	Version        string   `toml:"version"`
	SourceURL      string   `toml:"source_url"`
	Namespace      string   `toml:"namespace"`
	Qualifiers     []string `toml:"qualifiers"`
	Title          string   `toml:"title"`
	Marker         string   `toml:"marker"`
	DocumentFile   string   `toml:"document_file"`
	PlatformFamily string   `toml:"platform_family"`
	Renderer       string   `toml:"renderer"`
	Output         string   `toml:"output"`
	Header         string   `toml:"header"`
	Footer         string   `toml:"footer"`
}

// DefaultConfig returns the configuration for the joi API reference.
func DefaultConfig() Config {
	return Config{
		Name:           "joi",
		SourceURL:      "https://raw.githubusercontent.com/hapijs/joi/v{version}/API.md",
		Namespace:      "Joi",
		Qualifiers:     []string{dashdoc.DefaultQualifier},
		Title:          "# Joi Reference",
		Marker:         `<img src="https://raw.github.com/hapijs/joi/master/images/validation.png" align="right" />`,
		DocumentFile:   dashdoc.DefaultDocumentFile,
		PlatformFamily: "joi",
		Renderer:       RendererGitHub,
		Output:         ".",
	}
}

// LoadConfig decodes the TOML file at path over cfg. Keys not present in
// the file keep their current values; unknown keys are rejected.
func LoadConfig(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return dashdoc.Errorf(dashdoc.EINVALID, "failed to read config %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return dashdoc.Errorf(dashdoc.EINVALID, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate returns an error if the configuration cannot produce a docset.
func (c *Config) Validate() error {
	if c.Name == "" {
		return dashdoc.Errorf(dashdoc.EINVALID, "docset name required")
	}
	if strings.ContainsAny(c.Name, `/\`) {
		return dashdoc.Errorf(dashdoc.EINVALID, "docset name %q must not contain path separators", c.Name)
	}
	if c.Namespace == "" {
		return dashdoc.Errorf(dashdoc.EINVALID, "namespace required")
	}
	if c.SourceURL == "" {
		return dashdoc.Errorf(dashdoc.EINVALID, "source URL required")
	}
	if strings.Contains(c.SourceURL, "{version}") && c.Version == "" {
		return dashdoc.Errorf(dashdoc.EINVALID, "version required for source URL %s", c.SourceURL)
	}
	if c.Marker == "" {
		return dashdoc.Errorf(dashdoc.EINVALID, "front matter marker required")
	}
	if c.DocumentFile == "" {
		return dashdoc.Errorf(dashdoc.EINVALID, "document file required")
	}
	switch c.Renderer {
	case RendererGitHub, RendererGoldmark:
	default:
		return dashdoc.Errorf(dashdoc.EINVALID, "unknown renderer %q (want %s or %s)", c.Renderer, RendererGitHub, RendererGoldmark)
	}
	return nil
}

// ResolvedURL returns the source URL with the version substituted.
func (c *Config) ResolvedURL() string {
	return strings.ReplaceAll(c.SourceURL, "{version}", c.Version)
}

// Source returns the reference document description.
func (c *Config) Source() dashdoc.Source {
	return dashdoc.Source{
		URL:          c.ResolvedURL(),
		Marker:       c.Marker,
		Title:        c.Title,
		DocumentFile: c.DocumentFile,
	}
}

// Info returns the docset metadata.
func (c *Config) Info() *dashdoc.DocsetInfo {
	return &dashdoc.DocsetInfo{
		Identifier:     c.Name,
		Name:           c.Namespace,
		PlatformFamily: c.PlatformFamily,
		IndexFile:      c.DocumentFile,
	}
}

// Classifier returns the symbol classifier for the configured namespace.
func (c *Config) Classifier() *dashdoc.Classifier {
	return dashdoc.NewClassifier(c.Namespace, c.Qualifiers...)
}
