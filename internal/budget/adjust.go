package budget

import (
	"errors"
	"fmt"

	"github.com/artscollective/grantbook/internal/domain"
)

var (
	ErrItemNotFound   = errors.New("budget item not found")
	ErrNotRevenueItem = errors.New("budget item is not a revenue line")
	ErrInvalidStatus  = errors.New("invalid budget item status")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// SetActualAmount returns a copy of b with the actual amount of a revenue
// line replaced. A nil value clears it.
func SetActualAmount(b *domain.DetailedBudget, itemID string, value *float64) (domain.DetailedBudget, error) {
	if value != nil && *value < 0 {
		return domain.DetailedBudget{}, ErrNegativeAmount
	}
	out := domain.ApplyBudgetDefaults(b)
	item, err := revenueItem(&out, itemID)
	if err != nil {
		return domain.DetailedBudget{}, err
	}
	if value == nil {
		item.ActualAmount = nil
	} else {
		item.ActualAmount = domain.Float64Ptr(*value)
	}
	return out, nil
}

// SetActualTicketRevenue returns a copy of b with the entered ticket receipts.
func SetActualTicketRevenue(b *domain.DetailedBudget, value float64) (domain.DetailedBudget, error) {
	if value < 0 {
		return domain.DetailedBudget{}, ErrNegativeAmount
	}
	out := domain.ApplyBudgetDefaults(b)
	out.Revenues.Tickets.ActualRevenue = domain.Float64Ptr(value)
	return out, nil
}

// SetItemStatus returns a copy of b with a revenue line's status replaced.
func SetItemStatus(b *domain.DetailedBudget, itemID string, status domain.BudgetItemStatus) (domain.DetailedBudget, error) {
	if !domain.ValidBudgetItemStatuses[status] {
		return domain.DetailedBudget{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	out := domain.ApplyBudgetDefaults(b)
	item, err := revenueItem(&out, itemID)
	if err != nil {
		return domain.DetailedBudget{}, err
	}
	item.Status = status
	return out, nil
}

func revenueItem(b *domain.DetailedBudget, itemID string) (*domain.BudgetItem, error) {
	loc, ok := b.FindItem(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	if loc.Kind != domain.KindRevenue {
		return nil, fmt.Errorf("%w: %s", ErrNotRevenueItem, itemID)
	}
	items := b.RevenueItemsPtr(loc.RevenueCategory)
	return &(*items)[loc.Index], nil
}
