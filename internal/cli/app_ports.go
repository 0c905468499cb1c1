package cli

import "github.com/artscollective/grantbook/internal/app"

func (a *App) budgetViewUseCase() app.BudgetViewUseCase {
	if a.BudgetView != nil {
		return a.BudgetView
	}
	return a.Budget
}

func (a *App) finalReportUseCase() app.FinalReportUseCase {
	if a.FinalReport != nil {
		return a.FinalReport
	}
	return a.Budget
}

func (a *App) adjustmentUseCase() app.AdjustmentUseCase {
	if a.Adjustments != nil {
		return a.Adjustments
	}
	return a.Adjust
}

func (a *App) snapshotUseCase() app.SnapshotUseCase {
	if a.ProposalSnapshots != nil {
		return a.ProposalSnapshots
	}
	return a.Snapshots
}

func (a *App) importProjectUseCase() app.ImportProjectUseCase {
	if a.ImportProject != nil {
		return a.ImportProject
	}
	return a.Import
}
