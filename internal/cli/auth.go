package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handygo/tenant-client/internal/domain"
)

var errNotLoggedIn = errors.New("not logged in")

func LoginCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			res, err := app.Auth.Login(cmd.Context(), domain.Credentials{Email: email, Password: password})
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", res.User.FirstName)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func LogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func WhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored user and tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Auth.CurrentSession(cmd.Context())
			if err != nil {
				return err
			}
			if sess == nil {
				return errNotLoggedIn
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), sess)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s <%s>\n", sess.User.FullName(), sess.User.Email)
			if sess.User.Phone != "" {
				fmt.Fprintf(w, "Phone:    %s\n", sess.User.Phone)
			}
			if sess.Tenant != nil {
				fmt.Fprintf(w, "Property: %s\n", sess.Tenant.PropertyAddress)
				if sess.Tenant.Unit != "" {
					fmt.Fprintf(w, "Unit:     %s\n", sess.Tenant.Unit)
				}
			}
			return nil
		},
	}
}
