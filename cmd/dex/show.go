package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/entities"
)

func newShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one species with its forms and evolution tree",
		Long:  "Fetches an entity with its localized name, special forms, and full evolution tree.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the aggregate as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, arg string, asJSON bool) error {
	id, err := entities.ParseEntityID(arg)
	if err != nil {
		return err
	}

	return withDeps(cmd.Context(), func(d *Deps) error {
		result, err := d.SpeciesHandler.Handle(cmd.Context(), id)
		switch {
		case errors.Is(err, entities.ErrNotFound):
			return fmt.Errorf("species %d not found", id)
		case err != nil:
			return err
		}

		if asJSON {
			return writeSpeciesJSON(cmd.OutOrStdout(), result)
		}
		renderSpecies(cmd.OutOrStdout(), result)
		return nil
	})
}

type speciesJSON struct {
	*entities.SpeciesAggregate
	IsFavorite bool   `json:"is_favorite"`
	Locale     string `json:"locale"`
}

func writeSpeciesJSON(w io.Writer, result *handlers.SpeciesResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	return enc.Encode(speciesJSON{
		SpeciesAggregate: result.Aggregate,
		IsFavorite:       result.IsFavorite,
		Locale:           result.Locale,
	})
}

func renderSpecies(w io.Writer, result *handlers.SpeciesResult) {
	st := newStyles(w)
	agg := result.Aggregate

	star := ""
	if result.IsFavorite {
		star = " " + st.focus.Render("★")
	}
	fmt.Fprintf(w, "%s (%s)%s\n", st.title.Render(fmt.Sprintf("#%d %s", agg.ID, agg.Name)), agg.CanonicalName, star)
	fmt.Fprintf(w, "Types: %s\n", strings.Join(agg.Types, ", "))
	if result.Locale != "" {
		fmt.Fprintf(w, "Locale: %s\n", result.Locale)
	}

	if len(agg.Stats) > 0 {
		stats := make([]string, 0, len(agg.Stats))
		for _, s := range agg.Stats {
			stats = append(stats, fmt.Sprintf("%s %d", s.Name, s.Base))
		}
		fmt.Fprintf(w, "Stats: %s\n", strings.Join(stats, ", "))
	}
	if agg.SpriteRef != "" {
		fmt.Fprintf(w, "Sprite: %s\n", st.muted.Render(agg.SpriteRef))
	}

	if len(agg.Forms) > 0 {
		fmt.Fprintf(w, "\n%s\n", st.heading.Render("Forms:"))
		for _, f := range agg.Forms {
			fmt.Fprintf(w, "  %s [%s]\n", f.Label, strings.Join(f.Types, ", "))
		}
	}

	fmt.Fprintf(w, "\n%s\n", st.heading.Render("Evolution:"))
	renderTree(w, st, result.Tree)
}

func renderTree(w io.Writer, st styles, lines []handlers.TreeLine) {
	for _, line := range lines {
		indent := strings.Repeat("  ", line.Depth+1)
		label := fmt.Sprintf("%s #%d", line.Name, line.ID)
		if line.IsFocus {
			label = st.focus.Render(label + " *")
		}
		if line.Depth == 0 {
			fmt.Fprintf(w, "%s%s\n", indent, label)
			continue
		}
		fmt.Fprintf(w, "%s└ %s  %s\n", indent, label, st.condition.Render("("+line.Condition+")"))
	}
}
