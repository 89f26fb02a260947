package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handygo/tenant-client/internal/domain"
	"github.com/handygo/tenant-client/internal/present"
)

func RequestsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Manage maintenance requests",
	}
	cmd.AddCommand(
		requestsListCmd(app),
		requestsGetCmd(app),
		requestsCreateCmd(app),
		requestsCancelCmd(app),
	)
	return cmd
}

func requestsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			search, _ := cmd.Flags().GetString("search")
			if !slices.Contains(present.StatusFilters, status) {
				return fmt.Errorf("unknown status %q (want one of %s)", status, strings.Join(present.StatusFilters, ", "))
			}

			reqs, err := app.Requests.List(cmd.Context(), "")
			if err != nil {
				return err
			}
			reqs = present.FilterRequests(reqs, status, search)

			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), reqs)
			}
			if len(reqs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No requests found")
				return nil
			}
			for _, r := range reqs {
				printRequestLine(cmd.OutOrStdout(), r, app)
			}
			return nil
		},
	}
	cmd.Flags().String("status", present.FilterAll, "Status filter: "+strings.Join(present.StatusFilters, ", "))
	cmd.Flags().String("search", "", "Match description or category")
	return cmd
}

func requestsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := app.Requests.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), req)
			}
			printRequestDetail(cmd.OutOrStdout(), req)
			return nil
		},
	}
}

func requestsCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a new request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			description, _ := cmd.Flags().GetString("description")
			priority, _ := cmd.Flags().GetString("priority")
			images, _ := cmd.Flags().GetStringSlice("image")

			req, err := app.Requests.Create(cmd.Context(), domain.CreateRequestInput{
				Category:    domain.Category(category),
				Description: strings.TrimSpace(description),
				Priority:    domain.Priority(priority),
				Images:      images,
			})
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), req)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Request %s submitted (%s)\n", req.ID, req.Status)
			return nil
		},
	}
	cmd.Flags().String("category", "", "plumbing, electrical, ac, painting, carpentry, cleaning or general")
	cmd.Flags().String("description", "", "What needs fixing")
	cmd.Flags().String("priority", string(domain.PriorityMedium), "low, medium, high or urgent")
	cmd.Flags().StringSlice("image", nil, "Photo URL (repeatable)")
	return cmd
}

func requestsCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [id]",
		Short: "Cancel a pending or assigned request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Requests.Cancel(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Request %s cancelled\n", args[0])
			return nil
		},
	}
}

func printRequestLine(w io.Writer, r domain.MaintenanceRequest, app *App) {
	cat := domain.CategoryInfoFor(r.Category)
	fmt.Fprintf(w, "%-16s %s %-11s %-8s %-12s %s\n",
		r.ID, cat.Icon, cat.Label, r.Priority, r.Status, present.TimeAgo(r.CreatedAt, app.Now()))
	fmt.Fprintf(w, "%17s%s\n", "", r.Description)
}

func printRequestDetail(w io.Writer, r *domain.MaintenanceRequest) {
	cat := domain.CategoryInfoFor(r.Category)
	fmt.Fprintf(w, "%s %s\n", cat.Icon, cat.Label)
	fmt.Fprintf(w, "ID:          %s\n", r.ID)
	fmt.Fprintf(w, "Status:      %s\n", r.Status)
	fmt.Fprintf(w, "Priority:    %s\n", r.Priority)
	fmt.Fprintf(w, "Description: %s\n", r.Description)
	fmt.Fprintf(w, "Address:     %s\n", r.PropertyAddress)
	fmt.Fprintf(w, "Submitted:   %s\n", present.FormatDate(r.CreatedAt, nil))
	if r.AssignedHandymanName != "" {
		fmt.Fprintf(w, "Handyman:    %s", r.AssignedHandymanName)
		if r.HandymanPhone != "" {
			fmt.Fprintf(w, " (%s)", r.HandymanPhone)
		}
		fmt.Fprintln(w)
	}
	if r.EstimatedCost != nil {
		fmt.Fprintf(w, "Estimate:    AED %.2f\n", *r.EstimatedCost)
	}
	if r.CompletedAt != nil {
		fmt.Fprintf(w, "Completed:   %s\n", present.FormatDate(*r.CompletedAt, nil))
	}
	if len(r.Images) > 0 {
		fmt.Fprintf(w, "Photos:      %s\n", strings.Join(r.Images, ", "))
	}
	switch {
	case r.CanCancel():
		fmt.Fprintf(w, "\nCancel with: handygo requests cancel %s\n", r.ID)
	case r.CanRate():
		fmt.Fprintf(w, "\nRate %s with: handygo reviews create --request %s --rating 5\n", r.AssignedHandymanName, r.ID)
	}
}
