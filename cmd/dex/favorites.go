package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// Valid import/export formats.
var validFormats = []string{"json", "csv"}

func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite species",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favorites in the order they were added",
			Args:  cobra.NoArgs,
			RunE:  runFavoritesList,
		},
		&cobra.Command{
			Use:   "toggle <id>",
			Short: "Add or remove a favorite",
			Args:  cobra.ExactArgs(1),
			RunE:  runFavoritesToggle,
		},
		newFavoritesExportCmd(),
		newFavoritesImportCmd(),
	)

	return cmd
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		ids, err := d.FavoritesHandler.List(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(ids) == 0 {
			fmt.Fprintln(out, "No favorites yet.")
			return nil
		}
		for _, id := range ids {
			fmt.Fprintf(out, "#%d\n", id)
		}
		fmt.Fprintf(out, "\n%d favorites in %s\n", len(ids), newStyles(out).muted.Render(d.FavoritesPath))
		return nil
	})
}

func runFavoritesToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := entities.ParseEntityID(args[0])
	if err != nil {
		return err
	}

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.FavoritesHandler.Toggle(ctx, id)
		if err != nil {
			return err
		}

		if result.IsFavorite {
			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d to favorites\n", result.ID)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed #%d from favorites\n", result.ID)
		}
		return nil
	})
}

func newFavoritesExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export favorites to JSON or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesExport(cmd, format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runFavoritesExport(cmd *cobra.Command, format, output string) error {
	ctx := cmd.Context()

	format = strings.ToLower(format)
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, validFormats)
	}

	return withDeps(ctx, func(d *Deps) error {
		ids, err := d.FavoritesHandler.List(ctx)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if format == "csv" {
			return formatCSV(w, ids)
		}
		return formatJSON(w, ids)
	})
}

func formatJSON(w io.Writer, ids []entities.EntityID) error {
	type exportFavorite struct {
		ID entities.EntityID `json:"id"`
	}

	exported := make([]exportFavorite, 0, len(ids))
	for _, id := range ids {
		exported = append(exported, exportFavorite{ID: id})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", jsonIndent)
	return encoder.Encode(exported)
}

func formatCSV(w io.Writer, ids []entities.EntityID) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"id"}); err != nil {
		return err
	}
	for _, id := range ids {
		if err := writer.Write([]string{id.String()}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func newFavoritesImportCmd() *cobra.Command {
	var (
		format string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import favorites from a JSON or CSV file",
		Long:  "Adds every id from the file that is not already a favorite, in file order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesImport(cmd, args[0], format, dryRun)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format (json, csv); detected from the extension when empty")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without saving")

	return cmd
}

func runFavoritesImport(cmd *cobra.Command, path, format string, dryRun bool) error {
	ctx := cmd.Context()

	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.FavoritesHandler.Import(ctx, f, format, services.ImportOptions{DryRun: dryRun})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range result.Errors {
			fmt.Fprintf(out, "skipped %v\n", e)
		}
		verb := "Imported"
		if dryRun {
			verb = "Would import"
		}
		fmt.Fprintf(out, "%s %d favorites (%d already present)\n", verb, result.Imported, result.Skipped)
		return nil
	})
}
