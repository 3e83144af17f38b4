package cmd

import (
	"fmt"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/spf13/cobra"
)

// newThemeCmd is the header toggle: it works without a session, like lang.
func newThemeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := app.core.Settings.Theme(cmd.Context())
			if len(args) == 1 {
				var err error
				if theme, err = applyTheme(cmd, app, args[0]); err != nil {
					return err
				}
			}

			return printTheme(cmd, app, theme)
		},
	}
}

func printTheme(cmd *cobra.Command, app *app, theme domain.Theme) error {
	key := i18n.ThemeLight
	if theme == domain.ThemeDark {
		key = i18n.ThemeDark
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", theme, app.core.Locale.Text(key))
	return err
}
