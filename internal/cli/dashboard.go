package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handygo/tenant-client/internal/domain"
	"github.com/handygo/tenant-client/internal/present"
)

func DashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summarize your requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := app.Requests.List(cmd.Context(), "")
			if err != nil {
				return err
			}
			summary := present.Summarize(reqs)
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), summary)
			}

			w := cmd.OutOrStdout()
			if sess, err := app.Auth.CurrentSession(cmd.Context()); err == nil && sess != nil {
				fmt.Fprintf(w, "Welcome back, %s\n\n", sess.User.FirstName)
			}
			fmt.Fprintf(w, "Active:    %d\n", summary.Active)
			fmt.Fprintf(w, "Completed: %d\n", summary.Completed)
			if len(summary.Recent) > 0 {
				fmt.Fprintln(w, "\nRecent requests")
				for _, r := range summary.Recent {
					printRequestLine(w, r, app)
				}
			}
			return nil
		},
	}
}

func CategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List service categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), domain.Categories)
			}
			for _, c := range domain.Categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-11s %s\n", c.Icon, c.Key, c.Label)
			}
			return nil
		},
	}
}
