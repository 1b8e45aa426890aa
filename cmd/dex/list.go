package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/application/handlers"
)

func newListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Long:  "Lists catalog entries with their localized names.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, "", limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultListLimit, "Number of entries to fetch (default from config)")

	return cmd
}

func newSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search catalog entries by name",
		Long:  "Case-insensitive substring search over canonical and localized names.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultListLimit, "Number of entries to search (default from config)")

	return cmd
}

func runList(cmd *cobra.Command, term string, limit int) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		if limit <= 0 {
			limit = d.Config.Catalog.ListLimit
		}

		var (
			result *handlers.CatalogResult
			err    error
		)
		if term == "" {
			result, err = d.CatalogHandler.List(ctx, limit)
		} else {
			result, err = d.CatalogHandler.Search(ctx, term, limit)
		}
		if err != nil {
			return err
		}

		renderEntries(cmd.OutOrStdout(), result)
		return nil
	})
}

func renderEntries(w io.Writer, result *handlers.CatalogResult) {
	if len(result.Entries) == 0 {
		if result.Term != "" {
			fmt.Fprintf(w, "No entries match %q.\n", result.Term)
		} else {
			fmt.Fprintln(w, "No entries found.")
		}
		return
	}

	st := newStyles(w)
	for _, e := range result.Entries {
		fmt.Fprintf(w, "#%-5d %s %s\n", e.ID, e.Name, st.muted.Render("("+e.CanonicalName+")"))
	}
	fmt.Fprintf(w, "\n%d entries\n", len(result.Entries))
}
