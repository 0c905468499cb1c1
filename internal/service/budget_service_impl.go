package service

import (
	"context"
	"time"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/budget"
	"github.com/artscollective/grantbook/internal/db"
)

type budgetService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewBudgetService(uow db.UnitOfWork, observers ...UseCaseObserver) BudgetService {
	return &budgetService{uow: uow, observer: combineObservers(observers)}
}

func (s *budgetService) GetBudgetView(ctx context.Context, req app.BudgetViewRequest) (resp *app.BudgetViewResponse, err error) {
	fields := map[string]any{"project": req.ProjectID}
	defer observe(ctx, s.observer, "budget-view", time.Now().UTC(), fields, &err)

	var st *projectState
	st, err = loadProjectState(ctx, s.uow, req.ProjectID)
	if err != nil {
		return nil, err
	}

	ev := budget.Evaluate(st.inputs)
	fields["events"] = len(st.inputs.Events)
	fields["projected_balance"] = ev.Summary.ProjectedBalance

	return &app.BudgetViewResponse{
		Project:    st.project,
		Budget:     st.project.Budget,
		Evaluation: ev,
	}, nil
}

func (s *budgetService) GetFinalReport(ctx context.Context, projectID string) (resp *app.FinalReportResponse, err error) {
	fields := map[string]any{"project": projectID}
	defer observe(ctx, s.observer, "final-report", time.Now().UTC(), fields, &err)

	var st *projectState
	st, err = loadProjectState(ctx, s.uow, projectID)
	if err != nil {
		return nil, err
	}

	in := st.inputs
	totals := budget.ComputeBudgetTotals(in.Budget)
	tickets := budget.ComputeTicketRevenue(projectID, in.Events, in.Venues, in.Tickets)
	sales := budget.ComputeSalesRevenue(projectID, in.Events, in.Sessions, in.Transactions)
	actuals := budget.ComputeReportActuals(in.Budget, in.Tasks, in.Activities, in.Expenses)
	report := budget.ComposeFinalReport(totals, tickets, sales, actuals)
	fields["balance"] = report.Balance

	return &app.FinalReportResponse{
		Project: st.project,
		Report:  report,
		Actuals: actuals,
		Tickets: tickets,
		Sales:   sales,
	}, nil
}
