package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/dashdoc"
)

// Run executes the entries command.
func (c *EntriesCmd) Run(deps *Dependencies) error {
	if c.Type != "" && !dashdoc.EntryType(c.Type).Valid() {
		err := dashdoc.Errorf(dashdoc.EINVALID, "unknown entry type %q", c.Type)
		fmt.Fprintf(deps.Stderr, "error: %s\n", dashdoc.ErrorMessage(err))
		return err
	}

	entries, err := deps.Index.FindEntries(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	n := 0
	for _, e := range entries {
		if c.Type != "" && string(e.Type) != c.Type {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Type, e.Name, e.Path)
		n++
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if n == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found.")
	}
	return nil
}
