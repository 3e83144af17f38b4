package cmd

import (
	"fmt"

	"github.com/bnema/gamelan-harmony/internal/adapters/render/screen"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/spf13/cobra"
)

func newConsultCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "consult ID",
		Short: "Start a consultation for a destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			consultation, err := app.core.History.StartConsultation(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			destination, err := app.core.Catalog.Get(consultation.DestinationID)
			if err != nil {
				return err
			}

			app.notify(cmd, i18n.ConsultationOpened, ports.SeveritySuccess)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", app.core.Locale.Text(i18n.RecommendationFound), destination.Name, destination.ID)
			return err
		},
	}
}

func newHistoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past consultations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			byID := destinationsByID(app.core.Catalog.All())
			consultations := app.core.History.History(cmd.Context())
			entries := make([]screen.HistoryEntry, 0, len(consultations))
			for _, consultation := range consultations {
				entries = append(entries, screen.HistoryEntry{
					Consultation: consultation,
					Destination:  byID[consultation.DestinationID],
				})
			}

			rendered, err := screen.History(app.screenOptions(cmd.Context()), entries)
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}
