package domain

// BudgetItem is a single revenue or expense line. ActualAmount and Status
// only apply to revenue lines; expense lines leave both unset.
type BudgetItem struct {
	ID           string           `json:"id"`
	Source       string           `json:"source"`
	Description  string           `json:"description"`
	Amount       float64          `json:"amount"`
	ActualAmount *float64         `json:"actualAmount,omitempty"`
	Status       BudgetItemStatus `json:"status,omitempty"`
}

// TicketRevenue holds the manually entered ticket receipts. The budgeted
// ticket figure is always derived from events and never stored.
type TicketRevenue struct {
	ActualRevenue *float64 `json:"actualRevenue,omitempty"`
}

type RevenueBudget struct {
	Grants        []BudgetItem  `json:"grants"`
	Tickets       TicketRevenue `json:"tickets"`
	Sales         []BudgetItem  `json:"sales"`
	Fundraising   []BudgetItem  `json:"fundraising"`
	Contributions []BudgetItem  `json:"contributions"`
}

type ExpenseBudget struct {
	ProfessionalFees        []BudgetItem `json:"professionalFees"`
	Travel                  []BudgetItem `json:"travel"`
	Production              []BudgetItem `json:"production"`
	Administration          []BudgetItem `json:"administration"`
	Research                []BudgetItem `json:"research"`
	ProfessionalDevelopment []BudgetItem `json:"professionalDevelopment"`
}

// DetailedBudget is a project's full set of budget lines. Category keys are
// fixed; an empty category is an initialized empty list.
type DetailedBudget struct {
	Revenues RevenueBudget `json:"revenues"`
	Expenses ExpenseBudget `json:"expenses"`
}

// ApplyBudgetDefaults returns a fully populated copy of b: every category is
// a non-nil list and the ticket actual revenue is set. A nil b yields the
// empty budget. Item slices are copied so callers may not alias the input.
func ApplyBudgetDefaults(b *DetailedBudget) DetailedBudget {
	var src DetailedBudget
	if b != nil {
		src = *b
	}

	out := DetailedBudget{
		Revenues: RevenueBudget{
			Grants:        copyItems(src.Revenues.Grants),
			Sales:         copyItems(src.Revenues.Sales),
			Fundraising:   copyItems(src.Revenues.Fundraising),
			Contributions: copyItems(src.Revenues.Contributions),
		},
		Expenses: ExpenseBudget{
			ProfessionalFees:        copyItems(src.Expenses.ProfessionalFees),
			Travel:                  copyItems(src.Expenses.Travel),
			Production:              copyItems(src.Expenses.Production),
			Administration:          copyItems(src.Expenses.Administration),
			Research:                copyItems(src.Expenses.Research),
			ProfessionalDevelopment: copyItems(src.Expenses.ProfessionalDevelopment),
		},
	}
	out.Revenues.Tickets.ActualRevenue = Float64Ptr(Float64FromPtrWithDefault(0, src.Revenues.Tickets.ActualRevenue))
	return out
}

// NewDetailedBudget returns the empty, fully initialized budget.
func NewDetailedBudget() DetailedBudget {
	return ApplyBudgetDefaults(nil)
}

func copyItems(items []BudgetItem) []BudgetItem {
	out := make([]BudgetItem, len(items))
	for i, it := range items {
		out[i] = it
		if it.ActualAmount != nil {
			out[i].ActualAmount = Float64Ptr(*it.ActualAmount)
		}
	}
	return out
}

// RevenueItems returns the line items of a revenue category. Tickets and
// unknown categories have no items.
func (b *DetailedBudget) RevenueItems(cat RevenueCategory) []BudgetItem {
	switch cat {
	case RevenueGrants:
		return b.Revenues.Grants
	case RevenueSales:
		return b.Revenues.Sales
	case RevenueFundraising:
		return b.Revenues.Fundraising
	case RevenueContributions:
		return b.Revenues.Contributions
	default:
		return nil
	}
}

// RevenueItemsPtr returns a pointer to the slice backing a revenue category.
func (b *DetailedBudget) RevenueItemsPtr(cat RevenueCategory) *[]BudgetItem {
	switch cat {
	case RevenueGrants:
		return &b.Revenues.Grants
	case RevenueSales:
		return &b.Revenues.Sales
	case RevenueFundraising:
		return &b.Revenues.Fundraising
	case RevenueContributions:
		return &b.Revenues.Contributions
	default:
		return nil
	}
}

// ExpenseItems returns the line items of an expense category.
func (b *DetailedBudget) ExpenseItems(cat ExpenseCategory) []BudgetItem {
	if p := b.ExpenseItemsPtr(cat); p != nil {
		return *p
	}
	return nil
}

// ExpenseItemsPtr returns a pointer to the slice backing an expense category.
func (b *DetailedBudget) ExpenseItemsPtr(cat ExpenseCategory) *[]BudgetItem {
	switch cat {
	case ExpenseProfessionalFees:
		return &b.Expenses.ProfessionalFees
	case ExpenseTravel:
		return &b.Expenses.Travel
	case ExpenseProduction:
		return &b.Expenses.Production
	case ExpenseAdministration:
		return &b.Expenses.Administration
	case ExpenseResearch:
		return &b.Expenses.Research
	case ExpenseProfessionalDevelopment:
		return &b.Expenses.ProfessionalDevelopment
	default:
		return nil
	}
}

// ItemLocation identifies where a budget line lives.
type ItemLocation struct {
	Kind            BudgetKind
	RevenueCategory RevenueCategory
	ExpenseCategory ExpenseCategory
	Index           int
}

// FindItem locates a line item by ID across all categories.
func (b *DetailedBudget) FindItem(id string) (ItemLocation, bool) {
	for _, cat := range ItemRevenueCategories {
		for i, it := range b.RevenueItems(cat) {
			if it.ID == id {
				return ItemLocation{Kind: KindRevenue, RevenueCategory: cat, Index: i}, true
			}
		}
	}
	for _, cat := range ExpenseCategories {
		for i, it := range b.ExpenseItems(cat) {
			if it.ID == id {
				return ItemLocation{Kind: KindExpense, ExpenseCategory: cat, Index: i}, true
			}
		}
	}
	return ItemLocation{}, false
}

// ValidRevenueCategory reports whether s names a revenue category that holds items.
func ValidRevenueCategory(s string) bool {
	for _, c := range ItemRevenueCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ValidExpenseCategory reports whether s names an expense category.
func ValidExpenseCategory(s string) bool {
	for _, c := range ExpenseCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}
