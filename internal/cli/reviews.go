package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handygo/tenant-client/internal/apperr"
	"github.com/handygo/tenant-client/internal/domain"
	"github.com/handygo/tenant-client/internal/services"
)

func ReviewsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "List and leave handyman reviews",
	}
	cmd.AddCommand(reviewsListCmd(app), reviewsCreateCmd(app))
	return cmd
}

func reviewsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			revs, err := app.Reviews.List(cmd.Context())
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), revs)
			}
			if len(revs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reviews yet")
				return nil
			}
			for _, r := range revs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-5s %s (request %s)\n",
					r.ID, stars(r.Rating), r.HandymanName, r.RequestID)
				if r.Comment != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "    %q\n", r.Comment)
				}
			}
			return nil
		},
	}
}

func reviewsCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Rate the handyman of a completed request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, _ := cmd.Flags().GetString("request")
			rating, _ := cmd.Flags().GetInt("rating")
			comment, _ := cmd.Flags().GetString("comment")
			if requestID == "" {
				return apperr.BadRequest("--request is required", nil)
			}

			// The handyman always comes from the request being rated.
			req, err := app.Requests.Get(cmd.Context(), requestID)
			if err != nil {
				return err
			}
			if !req.CanRate() {
				return services.ErrNotRateable
			}

			rev, err := app.Reviews.Create(cmd.Context(), domain.CreateReviewInput{
				RequestID:  req.ID,
				HandymanID: req.AssignedHandymanID,
				Rating:     rating,
				Comment:    strings.TrimSpace(comment),
			})
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), rev)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Thanks! Review %s saved\n", rev.ID)
			return nil
		},
	}
	cmd.Flags().String("request", "", "ID of a completed request")
	cmd.Flags().Int("rating", 0, "Rating from 1 to 5")
	cmd.Flags().String("comment", "", "Optional comment")
	return cmd
}

func stars(n int) string {
	n = max(0, min(5, n))
	return strings.Repeat("*", n)
}
