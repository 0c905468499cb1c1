package formatter

import "github.com/artscollective/grantbook/internal/domain"

// Labeler supplies display names for budget categories.
type Labeler interface {
	RevenueLabel(cat domain.RevenueCategory) string
	ExpenseLabel(cat domain.ExpenseCategory) string
}

// Display carries the user's presentation preferences into every renderer.
type Display struct {
	Currency string
	Labels   Labeler
}

func (d Display) Money(v float64) string {
	return FormatMoney(d.Currency, v)
}

func (d Display) SignedMoney(v float64) string {
	return FormatSignedMoney(d.Currency, v)
}

// Balance renders v colored by sign.
func (d Display) Balance(v float64) string {
	return BalanceStyle(v).Render(d.Money(v))
}

func (d Display) RevenueLabel(cat domain.RevenueCategory) string {
	if d.Labels == nil {
		return string(cat)
	}
	return d.Labels.RevenueLabel(cat)
}

func (d Display) ExpenseLabel(cat domain.ExpenseCategory) string {
	if d.Labels == nil {
		return string(cat)
	}
	return d.Labels.ExpenseLabel(cat)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
