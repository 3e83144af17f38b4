package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to Gamelan Harmony",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			core := app.core
			label := core.Locale.Text(i18n.SigningIn)
			if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, func(ctx context.Context) error {
				return core.Session.Login(ctx, email, password)
			}); err != nil {
				return err
			}

			app.notify(cmd, i18n.LoginSuccess, ports.SeveritySuccess)
			app.navigator.GoTo(cmd.Context(), ports.RouteHome)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (at least 6 characters)")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a Gamelan Harmony account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			core := app.core
			label := core.Locale.Text(i18n.SigningUp)
			if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, func(ctx context.Context) error {
				return core.Session.Register(ctx, name, email, password)
			}); err != nil {
				return err
			}

			app.notify(cmd, i18n.RegisterSuccess, ports.SeveritySuccess)
			app.navigator.GoTo(cmd.Context(), ports.RouteLogin)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name (at least 2 characters)")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (at least 6 characters)")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.core.Session.Logout(cmd.Context())
			app.notify(cmd, i18n.LogoutSuccess, ports.SeverityDefault)
			app.navigator.GoTo(cmd.Context(), ports.RouteHome)
			return nil
		},
	}
}

func (a *app) notify(cmd *cobra.Command, key i18n.MessageKey, severity ports.Severity) {
	a.notifier.Notify(cmd.Context(), a.core.Locale.Text(key), severity)
}

// requireSession sends anonymous users to the login screen, like the
// protected pages of the web client.
func (a *app) requireSession(cmd *cobra.Command) (domain.User, error) {
	user, ok := a.core.Session.User()
	if ok {
		return user, nil
	}

	a.notify(cmd, i18n.SessionRequired, ports.SeverityDestructive)
	a.navigator.GoTo(cmd.Context(), ports.RouteLogin)
	return domain.User{}, fmt.Errorf("%s: %w", cmd.CommandPath(), domain.ErrNotAuthenticated)
}
