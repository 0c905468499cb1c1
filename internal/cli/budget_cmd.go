package cli

import (
	"context"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/budget"
	"github.com/artscollective/grantbook/internal/cli/formatter"
	"github.com/artscollective/grantbook/internal/domain"
	"github.com/spf13/cobra"
)

type projectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func refOf(p *domain.Project) projectRef {
	return projectRef{ID: p.ID, Name: p.Name}
}

// loadBudgetView resolves the project argument and computes its live view.
func loadBudgetView(ctx context.Context, a *App, input string) (*app.BudgetViewResponse, error) {
	projectID, err := resolveProjectID(ctx, a, input)
	if err != nil {
		return nil, err
	}
	return a.budgetViewUseCase().GetBudgetView(ctx, app.BudgetViewRequest{ProjectID: projectID})
}

// newViewCmd builds a read command over the live budget view.
func newViewCmd(a *App, use, short string, run func(cmd *cobra.Command, view *app.BudgetViewResponse, asJSON bool) error) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   use + " PROJECT",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := loadBudgetView(context.Background(), a, args[0])
			if err != nil {
				return err
			}
			return run(cmd, view, asJSON)
		},
	}
	addJSONFlag(cmd, &asJSON)
	return cmd
}

func newBudgetCmd(a *App) *cobra.Command {
	return newViewCmd(a, "budget", "Show projected and actual budget figures",
		func(cmd *cobra.Command, view *app.BudgetViewResponse, asJSON bool) error {
			payload := struct {
				Project    projectRef            `json:"project"`
				Budget     domain.DetailedBudget `json:"budget"`
				Evaluation budget.Evaluation     `json:"evaluation"`
			}{refOf(view.Project), view.Budget, view.Evaluation}
			return emit(cmd, asJSON, payload, func() string {
				return formatter.FormatBudgetView(a.display(), view)
			})
		})
}

func newTicketsCmd(a *App) *cobra.Command {
	return newViewCmd(a, "tickets", "Show projected ticket revenue",
		func(cmd *cobra.Command, view *app.BudgetViewResponse, asJSON bool) error {
			return emit(cmd, asJSON, view.Evaluation.Tickets, func() string {
				return formatter.Header("Tickets · "+view.Project.Name) + "\n" +
					formatter.FormatTickets(a.display(), view.Evaluation.Tickets)
			})
		})
}

func newSalesCmd(a *App) *cobra.Command {
	return newViewCmd(a, "sales", "Show sales revenue per sale session",
		func(cmd *cobra.Command, view *app.BudgetViewResponse, asJSON bool) error {
			return emit(cmd, asJSON, view.Evaluation.Sales, func() string {
				return formatter.Header("Sales · "+view.Project.Name) + "\n" +
					formatter.FormatSales(a.display(), view.Evaluation.Sales)
			})
		})
}

func newVenuesCmd(a *App) *cobra.Command {
	return newViewCmd(a, "venues", "Show projected venue costs per planned event",
		func(cmd *cobra.Command, view *app.BudgetViewResponse, asJSON bool) error {
			return emit(cmd, asJSON, view.Evaluation.VenueCosts, func() string {
				return formatter.Header("Venues · "+view.Project.Name) + "\n" +
					formatter.FormatVenueCosts(a.display(), view.Evaluation.VenueCosts)
			})
		})
}

func newActualsCmd(a *App) *cobra.Command {
	var report, asJSON bool

	cmd := &cobra.Command{
		Use:   "actuals PROJECT",
		Short: "Show realized costs against budget lines",
		Long: "Show realized costs against budget lines.\n\n" +
			"By default every logged activity counts. With --report only approved\n" +
			"activities count and only paid work enters expenses, as in the final report.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			d := a.display()

			if report {
				projectID, err := resolveProjectID(ctx, a, args[0])
				if err != nil {
					return err
				}
				resp, err := a.finalReportUseCase().GetFinalReport(ctx, projectID)
				if err != nil {
					return err
				}
				return emit(cmd, asJSON, resp.Actuals, func() string {
					return formatter.Header("Report actuals · "+resp.Project.Name) + "\n" +
						formatter.FormatReportActuals(d, resp.Actuals)
				})
			}

			view, err := loadBudgetView(ctx, a, args[0])
			if err != nil {
				return err
			}
			return emit(cmd, asJSON, view.Evaluation.Actuals, func() string {
				return formatter.Header("Actuals · "+view.Project.Name) + "\n" +
					formatter.FormatActuals(d, view.Budget, view.Evaluation.Actuals)
			})
		},
	}

	cmd.Flags().BoolVar(&report, "report", false, "Use the final-report rules (approved activities, paid work only)")
	addJSONFlag(cmd, &asJSON)
	return cmd
}

func newReportCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report PROJECT",
		Short: "Show the final report: budgeted against actual per category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, a, args[0])
			if err != nil {
				return err
			}
			resp, err := a.finalReportUseCase().GetFinalReport(ctx, projectID)
			if err != nil {
				return err
			}
			payload := struct {
				Project projectRef         `json:"project"`
				Report  budget.FinalReport `json:"report"`
			}{refOf(resp.Project), resp.Report}
			return emit(cmd, asJSON, payload, func() string {
				return formatter.FormatFinalReport(a.display(), resp)
			})
		},
	}

	addJSONFlag(cmd, &asJSON)
	return cmd
}
