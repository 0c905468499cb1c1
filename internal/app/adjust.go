package app

import "github.com/artscollective/grantbook/internal/domain"

// SetActualAmountRequest records the realized amount of a revenue line.
// A nil Amount clears it.
type SetActualAmountRequest struct {
	ProjectID string
	ItemID    string
	Amount    *float64
}

type SetTicketRevenueRequest struct {
	ProjectID string
	Amount    float64
}

type SetItemStatusRequest struct {
	ProjectID string
	ItemID    string
	Status    domain.BudgetItemStatus
}

// AdjustmentResult is the budget as persisted after an edit.
type AdjustmentResult struct {
	ProjectID string
	Budget    domain.DetailedBudget
}
