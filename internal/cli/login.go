package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shahrukh04/medicine-management-app/internal/auth"
)

// NewLoginCommand creates the login command: exchange credentials with
// the identity provider and store the opaque session token.
func NewLoginCommand(opts *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with the identity provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return NewExitError(ExitCommandError, "--email and --password are required")
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return WrapExitError(ExitCommandError, "load config", err)
			}

			client := auth.NewClient(cfg.AuthURL, cfg.AuthAPIKey)
			session, err := client.SignIn(cmd.Context(), email, password)
			if err != nil {
				return WrapExitError(ExitFailure, "sign in", err)
			}

			if err := auth.SaveSession(cfg.SessionPath, session); err != nil {
				return WrapExitError(ExitFailure, "store session", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", session.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

// NewRegisterCommand creates the register command: create an account and
// store its first session.
func NewRegisterCommand(opts *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account with the identity provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return NewExitError(ExitCommandError, "--email and --password are required")
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return WrapExitError(ExitCommandError, "load config", err)
			}

			client := auth.NewClient(cfg.AuthURL, cfg.AuthAPIKey)
			session, err := client.SignUp(cmd.Context(), email, password)
			if err != nil {
				return WrapExitError(ExitFailure, "sign up", err)
			}

			if err := auth.SaveSession(cfg.SessionPath, session); err != nil {
				return WrapExitError(ExitFailure, "store session", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered and signed in as %s\n", session.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

// NewLogoutCommand creates the logout command: drop the stored session.
func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return WrapExitError(ExitCommandError, "load config", err)
			}

			if err := auth.ClearSession(cfg.SessionPath); err != nil {
				return WrapExitError(ExitFailure, "clear session", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}
