package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func Execute() error {
	return run(newRootCmd())
}

// run executes rootCmd and releases whatever the invocation wired, including
// when the command itself failed and cobra skipped its post-run hooks.
func run(rootCmd *cobra.Command, app *app) (err error) {
	defer func() {
		err = errors.Join(err, app.close())
	}()

	return rootCmd.Execute()
}

func newRootCmd() (*cobra.Command, *app) {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "gamelan",
		Short:         "Gamelan Harmony: explore Keraton Yogyakarta gamelan destinations",
		Long:          "gamelan is the terminal client of Gamelan Harmony, a cultural tourism expert system for the gamelan heritage of the Keraton Yogyakarta. Browse the collection, sign in and start consultations from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationSkipWire] != "" {
				return nil
			}
			return app.wire(cmd.Context(), cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&app.ephemeral, "ephemeral", false, "Keep preferences in memory for this run only")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newProfileCmd(app),
		newLangCmd(app),
		newThemeCmd(app),
		newSettingsCmd(app),
		newCatalogCmd(app),
		newConsultCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd, app
}
