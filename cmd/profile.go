package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/gamelan-harmony/internal/adapters/render/screen"
	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.requireSession(cmd)
			if err != nil {
				return err
			}

			rendered, err := screen.Profile(app.screenOptions(cmd.Context()), screen.ProfileData{
				User:          user,
				Consultations: app.core.History.Count(cmd.Context()),
			})
			if err != nil {
				return fmt.Errorf("render profile: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.AddCommand(newProfileSetNameCmd(app))

	return cmd
}

func newProfileSetNameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-name NAME",
		Short: "Change the profile name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			name := strings.TrimSpace(strings.Join(args, " "))
			if err := app.core.Session.UpdateUser(cmd.Context(), domain.UserUpdate{Name: &name}); err != nil {
				return err
			}

			app.notify(cmd, i18n.ProfileUpdated, ports.SeveritySuccess)
			return nil
		},
	}
}
