package main

import (
	"fmt"

	"github.com/fwojciec/dashdoc"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	cfg := deps.Config

	result, err := deps.Generator.Run(deps.Ctx, cfg.Source(), cfg.Info())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Generated %s\n", deps.Docset.Root())
	fmt.Fprintf(deps.Stdout, "  references: %d\n", result.References)
	fmt.Fprintf(deps.Stdout, "  entries:    %d\n", result.Entries)
	fmt.Fprintf(deps.Stdout, "  anchors:    %d\n", result.Anchors)
	if result.Missing > 0 {
		fmt.Fprintf(deps.Stdout, "  unanchored: %d\n", result.Missing)
	}
	fmt.Fprintf(deps.Stdout, "  page:       %s (%d bytes)\n", cfg.DocumentFile, result.Bytes)
	return nil
}

// errorText returns the message of an application error, or the full
// error chain for anything else.
func errorText(err error) string {
	if dashdoc.ErrorCode(err) == dashdoc.EINTERNAL {
		return err.Error()
	}
	return dashdoc.ErrorMessage(err)
}
