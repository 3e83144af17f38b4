package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/gamelan-harmony/internal/adapters/render/screen"
	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *app) *cobra.Command {
	var (
		query  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"koleksi"},
		Short:   "Browse the gamelan destination collection",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			destinations := app.core.Catalog.Search(query)
			if asJSON {
				return writeJSON(cmd, destinations)
			}

			rendered, err := screen.Catalog(app.screenOptions(cmd.Context()), destinations)
			if err != nil {
				return fmt.Errorf("render catalog: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&query, "search", "", "Filter by name, description or ID")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.AddCommand(newCatalogShowCmd(app))

	return cmd
}

func newCatalogShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			destination, err := app.core.Catalog.Get(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, destination)
			}

			rendered, err := screen.Destination(app.screenOptions(cmd.Context()), destination)
			if err != nil {
				return fmt.Errorf("render destination: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// destinationsByID indexes the whole catalog for history lookups.
func destinationsByID(destinations []domain.Destination) map[string]domain.Destination {
	byID := make(map[string]domain.Destination, len(destinations))
	for _, destination := range destinations {
		byID[destination.ID] = destination
	}
	return byID
}
