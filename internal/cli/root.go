package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "handygo",
		Short:         "HandyGo tenant client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("json", false, "Print results as JSON")

	root.AddCommand(
		LoginCmd(app),
		LogoutCmd(app),
		WhoamiCmd(app),
		RequestsCmd(app),
		ReviewsCmd(app),
		DashboardCmd(app),
		CategoriesCmd(),
	)
	return root
}

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
