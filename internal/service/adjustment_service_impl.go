package service

import (
	"context"
	"fmt"
	"time"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/budget"
	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/repository"
)

type adjustmentService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewAdjustmentService(uow db.UnitOfWork, observers ...UseCaseObserver) AdjustmentService {
	return &adjustmentService{uow: uow, observer: combineObservers(observers)}
}

// editFunc applies a pure update command and persists the one field it
// changed through budgets.
type editFunc func(ctx context.Context, current *domain.DetailedBudget, budgets repository.BudgetRepo) (domain.DetailedBudget, error)

// edit loads the project's budget, runs fn, and touches the project, all in
// one transaction.
func (s *adjustmentService) edit(ctx context.Context, projectID string, fn editFunc) (*app.AdjustmentResult, error) {
	var result *app.AdjustmentResult
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projects := repository.NewSQLiteProjectRepo(tx)
		budgets := repository.NewSQLiteBudgetRepo(tx)

		if _, err := projects.GetByID(ctx, projectID); err != nil {
			return err
		}
		current, err := budgets.Load(ctx, projectID)
		if err != nil {
			return fmt.Errorf("loading budget: %w", err)
		}

		updated, err := fn(ctx, &current, budgets)
		if err != nil {
			return err
		}
		if err := projects.Touch(ctx, projectID); err != nil {
			return err
		}
		result = &app.AdjustmentResult{ProjectID: projectID, Budget: updated}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *adjustmentService) SetActualAmount(ctx context.Context, req app.SetActualAmountRequest) (res *app.AdjustmentResult, err error) {
	fields := map[string]any{"project": req.ProjectID, "item": req.ItemID, "cleared": req.Amount == nil}
	defer observe(ctx, s.observer, "set-actual-amount", time.Now().UTC(), fields, &err)

	return s.edit(ctx, req.ProjectID, func(ctx context.Context, current *domain.DetailedBudget, budgets repository.BudgetRepo) (domain.DetailedBudget, error) {
		updated, err := budget.SetActualAmount(current, req.ItemID, req.Amount)
		if err != nil {
			return domain.DetailedBudget{}, err
		}
		return updated, budgets.UpdateItemActual(ctx, req.ProjectID, req.ItemID, req.Amount)
	})
}

func (s *adjustmentService) SetActualTicketRevenue(ctx context.Context, req app.SetTicketRevenueRequest) (res *app.AdjustmentResult, err error) {
	fields := map[string]any{"project": req.ProjectID}
	defer observe(ctx, s.observer, "set-ticket-revenue", time.Now().UTC(), fields, &err)

	return s.edit(ctx, req.ProjectID, func(ctx context.Context, current *domain.DetailedBudget, budgets repository.BudgetRepo) (domain.DetailedBudget, error) {
		updated, err := budget.SetActualTicketRevenue(current, req.Amount)
		if err != nil {
			return domain.DetailedBudget{}, err
		}
		return updated, budgets.UpdateTicketActual(ctx, req.ProjectID, req.Amount)
	})
}

func (s *adjustmentService) SetItemStatus(ctx context.Context, req app.SetItemStatusRequest) (res *app.AdjustmentResult, err error) {
	fields := map[string]any{"project": req.ProjectID, "item": req.ItemID, "status": string(req.Status)}
	defer observe(ctx, s.observer, "set-item-status", time.Now().UTC(), fields, &err)

	return s.edit(ctx, req.ProjectID, func(ctx context.Context, current *domain.DetailedBudget, budgets repository.BudgetRepo) (domain.DetailedBudget, error) {
		updated, err := budget.SetItemStatus(current, req.ItemID, req.Status)
		if err != nil {
			return domain.DetailedBudget{}, err
		}
		return updated, budgets.UpdateItemStatus(ctx, req.ProjectID, req.ItemID, req.Status)
	})
}
