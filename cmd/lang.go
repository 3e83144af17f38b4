package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/spf13/cobra"
)

func newLangCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lang [id|en]",
		Short: "Show or change the interface language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locales := app.core.Locale
			if len(args) == 1 && !locales.SetLocale(cmd.Context(), args[0]) {
				return fmt.Errorf("unsupported language %q (supported: %s)", args[0], supportedLocaleList())
			}
			if len(args) == 1 {
				app.notify(cmd, i18n.SettingsSaved, ports.SeveritySuccess)
			}

			return printLocale(cmd, locales.Locale())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between Indonesian and English",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			locale := app.core.Locale.Toggle(cmd.Context())
			app.notify(cmd, i18n.SettingsSaved, ports.SeveritySuccess)
			return printLocale(cmd, locale)
		},
	})

	return cmd
}

func printLocale(cmd *cobra.Command, locale domain.Locale) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", locale, locale.SelfName())
	return err
}

func supportedLocaleList() string {
	codes := make([]string, 0, len(domain.SupportedLocales()))
	for _, locale := range domain.SupportedLocales() {
		codes = append(codes, string(locale))
	}
	return strings.Join(codes, ", ")
}
