package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/gamelan-harmony/internal/adapters/render/screen"
	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show account settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}
			return writeSettings(cmd, app)
		},
	}

	cmd.AddCommand(
		newSettingsThemeCmd(app),
		newSettingsNotificationsCmd(app),
		newSettingsDeleteAccountCmd(app),
	)

	return cmd
}

func writeSettings(cmd *cobra.Command, app *app) error {
	ctx := cmd.Context()
	rendered, err := screen.Settings(app.screenOptions(ctx), screen.SettingsData{
		Theme:              app.core.Settings.Theme(ctx),
		Locale:             app.core.Locale.Locale(),
		EmailNotifications: app.core.Settings.EmailNotifications(ctx),
	})
	if err != nil {
		return fmt.Errorf("render settings: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func newSettingsThemeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme light|dark|toggle",
		Short:     "Set the color theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			if _, err := applyTheme(cmd, app, args[0]); err != nil {
				return err
			}
			return writeSettings(cmd, app)
		},
	}
}

// applyTheme sets the theme named by arg, or flips it for "toggle".
func applyTheme(cmd *cobra.Command, app *app, arg string) (domain.Theme, error) {
	ctx := cmd.Context()

	var theme domain.Theme
	if strings.EqualFold(arg, "toggle") {
		theme = app.core.Settings.ToggleTheme(ctx)
	} else {
		parsed, ok := domain.ParseTheme(arg)
		if !ok {
			return "", fmt.Errorf("unsupported theme %q (supported: light, dark, toggle)", arg)
		}
		app.core.Settings.SetTheme(ctx, parsed)
		theme = parsed
	}

	app.notify(cmd, i18n.SettingsSaved, ports.SeveritySuccess)
	return theme, nil
}

func newSettingsNotificationsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "notifications on|off",
		Short:     "Enable or disable email notifications",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			var enabled bool
			switch strings.ToLower(args[0]) {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}

			app.core.Settings.SetEmailNotifications(cmd.Context(), enabled)
			app.notify(cmd, i18n.SettingsSaved, ports.SeveritySuccess)
			return writeSettings(cmd, app)
		},
	}
}

func newSettingsDeleteAccountCmd(app *app) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "delete-account",
		Short: "Delete the account and its local data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			if !confirmed {
				locale := app.core.Locale
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", locale.Text(i18n.DeleteAccountConfirm), locale.Text(i18n.DeleteAccountWarning))
				return errors.New("refusing to delete the account without --yes")
			}

			app.core.Settings.DeleteAccount(cmd.Context())
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm account deletion")

	return cmd
}
