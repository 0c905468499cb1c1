package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/budget"
	"github.com/artscollective/grantbook/internal/cli/formatter"
	"github.com/artscollective/grantbook/internal/domain"
	"github.com/spf13/cobra"
)

func newAdjustCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Record actual revenue and line statuses",
	}

	cmd.AddCommand(
		newAdjustActualCmd(a),
		newAdjustTicketsCmd(a),
		newAdjustStatusCmd(a),
	)

	return cmd
}

// resolveItem resolves the project and budget line arguments.
func resolveItem(ctx context.Context, a *App, projectArg, itemArg string) (projectID, itemID string, err error) {
	projectID, err = resolveProjectID(ctx, a, projectArg)
	if err != nil {
		return "", "", err
	}
	p, err := a.Projects.GetByID(ctx, projectID)
	if err != nil {
		return "", "", err
	}
	itemID, err = resolveItemID(p.Budget, itemArg)
	if err != nil {
		return "", "", err
	}
	return projectID, itemID, nil
}

func explainAdjustError(err error, itemID string) error {
	switch {
	case errors.Is(err, budget.ErrNotRevenueItem):
		return fmt.Errorf("item %s is an expense line; its actuals come from logged work and direct expenses", itemID)
	case errors.Is(err, budget.ErrItemNotFound):
		return fmt.Errorf("budget item not found: %q", itemID)
	default:
		return err
	}
}

func printAdjusted(cmd *cobra.Command, a *App, what string, res *app.AdjustmentResult) {
	d := a.display()
	totals := budget.ComputeBudgetTotals(&res.Budget)
	fmt.Fprintln(cmd.OutOrStdout(), what)
	fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf(
		"Recorded actuals %s · secured %s · pending %s",
		d.Money(totals.TotalActualRevenue), d.Money(totals.TotalSecuredRevenue), d.Money(totals.TotalPendingRevenue))))
}

func newAdjustActualCmd(a *App) *cobra.Command {
	var amount moneyValue
	var clearAmount bool

	cmd := &cobra.Command{
		Use:   "actual PROJECT ITEM",
		Short: "Set or clear the actual amount received for a revenue line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if clearAmount && amount.set {
				return fmt.Errorf("--amount and --clear are mutually exclusive")
			}

			projectID, itemID, err := resolveItem(ctx, a, args[0], args[1])
			if err != nil {
				return err
			}

			var value *float64
			switch {
			case amount.set:
				value = domain.Float64Ptr(amount.Float64())
			case clearAmount:
			case a.interactive():
				var input string
				if err := runForm(amountForm("Actual amount", "Leave blank to clear", true, &input)); err != nil {
					return err
				}
				if strings.TrimSpace(input) != "" {
					if err := amount.Set(input); err != nil {
						return err
					}
					value = domain.Float64Ptr(amount.Float64())
				}
			default:
				return fmt.Errorf("--amount or --clear is required")
			}

			res, err := a.adjustmentUseCase().SetActualAmount(ctx, app.SetActualAmountRequest{
				ProjectID: projectID,
				ItemID:    itemID,
				Amount:    value,
			})
			if err != nil {
				return explainAdjustError(err, itemID)
			}

			what := fmt.Sprintf("Cleared actual amount of %s", itemID)
			if value != nil {
				what = fmt.Sprintf("Set actual amount of %s to %s", itemID, a.display().Money(*value))
			}
			printAdjusted(cmd, a, what, res)
			return nil
		},
	}

	cmd.Flags().Var(&amount, "amount", "Amount received")
	cmd.Flags().BoolVar(&clearAmount, "clear", false, "Clear the recorded amount")
	return cmd
}

func newAdjustTicketsCmd(a *App) *cobra.Command {
	var amount moneyValue

	cmd := &cobra.Command{
		Use:   "tickets PROJECT",
		Short: "Set the actual ticket revenue received",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, a, args[0])
			if err != nil {
				return err
			}

			if !amount.set {
				if !a.interactive() {
					return fmt.Errorf("--amount is required")
				}
				var input string
				if err := runForm(amountForm("Actual ticket revenue", "", false, &input)); err != nil {
					return err
				}
				if err := amount.Set(input); err != nil {
					return err
				}
			}

			res, err := a.adjustmentUseCase().SetActualTicketRevenue(ctx, app.SetTicketRevenueRequest{
				ProjectID: projectID,
				Amount:    amount.Float64(),
			})
			if err != nil {
				return err
			}
			printAdjusted(cmd, a, "Set actual ticket revenue to "+a.display().Money(amount.Float64()), res)
			return nil
		},
	}

	cmd.Flags().Var(&amount, "amount", "Ticket revenue received")
	return cmd
}

// parseItemStatus matches a status name ignoring case.
func parseItemStatus(s string) (domain.BudgetItemStatus, error) {
	for status := range domain.ValidBudgetItemStatuses {
		if strings.EqualFold(string(status), strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid status %q (expected Pending, Approved or Denied)", s)
}

func newAdjustStatusCmd(a *App) *cobra.Command {
	var statusStr string

	cmd := &cobra.Command{
		Use:   "status PROJECT ITEM",
		Short: "Set the status of a revenue line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var status domain.BudgetItemStatus
			if statusStr != "" {
				s, err := parseItemStatus(statusStr)
				if err != nil {
					return err
				}
				status = s
			} else if !a.interactive() {
				return fmt.Errorf("--status is required")
			}

			projectID, itemID, err := resolveItem(ctx, a, args[0], args[1])
			if err != nil {
				return err
			}

			if status == "" {
				status = domain.StatusPending
				if err := runForm(statusForm(&status)); err != nil {
					return err
				}
			}

			res, err := a.adjustmentUseCase().SetItemStatus(ctx, app.SetItemStatusRequest{
				ProjectID: projectID,
				ItemID:    itemID,
				Status:    status,
			})
			if err != nil {
				return explainAdjustError(err, itemID)
			}
			printAdjusted(cmd, a, fmt.Sprintf("Set status of %s to %s", itemID, status), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&statusStr, "status", "", "Pending, Approved or Denied")
	return cmd
}
