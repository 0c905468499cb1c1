package budget

import "github.com/artscollective/grantbook/internal/domain"

// ItemActuals is the realized cost and contributed value attributed to one
// budget line.
type ItemActuals struct {
	Cost             float64 `json:"cost"`
	ContributedValue float64 `json:"contributedValue"`
	Hours            float64 `json:"hours"`
}

// ActualsResult is the live reconciliation of logged work and direct
// expenses against budget lines.
type ActualsResult struct {
	ByItem                  map[string]ItemActuals `json:"byItem"`
	TotalContributedValue   float64                `json:"totalContributedValue"`
	TotalActualPaidExpenses float64                `json:"totalActualPaidExpenses"`
}

// Item returns the actuals for a budget line, zero when nothing was logged.
func (r ActualsResult) Item(budgetItemID string) ItemActuals {
	return r.ByItem[budgetItemID]
}

// ComputeActuals attributes every activity, whatever its approval status,
// and every direct expense to the budget line it is billed against. Paid
// work becomes cost; in-kind and volunteer work becomes contributed value.
// Activities whose task is missing or unlinked are skipped.
func ComputeActuals(tasks []domain.Task, activities []domain.Activity, expenses []domain.DirectExpense) ActualsResult {
	result, _ := reconcile(tasks, activities, expenses, func(domain.Activity) bool { return true })
	return result
}

// reconcile also returns the budget line ids in the order they were first
// billed. Totals are summed in that order so repeated calls agree to the bit.
func reconcile(tasks []domain.Task, activities []domain.Activity, expenses []domain.DirectExpense, include func(domain.Activity) bool) (ActualsResult, []string) {
	taskByID := make(map[string]domain.Task, len(tasks))
	for _, t := range tasks {
		taskByID[t.ID] = t
	}

	byItem := make(map[string]ItemActuals)
	var order []string
	touch := func(itemID string) ItemActuals {
		entry, seen := byItem[itemID]
		if !seen {
			order = append(order, itemID)
		}
		return entry
	}

	for _, a := range activities {
		if !include(a) {
			continue
		}
		task, ok := taskByID[a.TaskID]
		if !ok {
			continue
		}
		itemID, linked := task.LinkedBudgetItem()
		if !linked {
			continue
		}

		entry := touch(itemID)
		value := a.Hours * task.HourlyRate
		if task.WorkType == domain.WorkPaid {
			entry.Cost += value
		} else {
			entry.ContributedValue += value
		}
		entry.Hours += a.Hours
		byItem[itemID] = entry
	}

	for _, e := range expenses {
		if e.BudgetItemID == nil || *e.BudgetItemID == "" {
			continue
		}
		entry := touch(*e.BudgetItemID)
		entry.Cost += e.Amount
		byItem[*e.BudgetItemID] = entry
	}

	result := ActualsResult{ByItem: byItem}
	for _, itemID := range order {
		entry := byItem[itemID]
		result.TotalContributedValue += entry.ContributedValue
		result.TotalActualPaidExpenses += entry.Cost
	}
	return result, order
}

// ReportActuals is the final-report view of realized expenses.
type ReportActuals struct {
	// ByItem is the paid cost per budget line.
	ByItem map[string]float64 `json:"byItem"`
	// ByCategory rolls ByItem up to the expense categories of the budget.
	ByCategory map[domain.ExpenseCategory]float64 `json:"byCategory"`
	// Unallocated is paid cost whose budget line is not an expense line of
	// this budget.
	Unallocated         float64 `json:"unallocated"`
	TotalActualExpenses float64 `json:"totalActualExpenses"`
	InKindValue         float64 `json:"inKindValue"`
	ApprovedHours       float64 `json:"approvedHours"`
}

// ComputeReportActuals is the reporting path. Unlike ComputeActuals it only
// counts approved activities, and only paid work enters the expense totals:
// approved in-kind and volunteer value is reported separately. Direct
// expenses always count.
func ComputeReportActuals(b *domain.DetailedBudget, tasks []domain.Task, activities []domain.Activity, expenses []domain.DirectExpense) ReportActuals {
	approved, order := reconcile(tasks, activities, expenses, func(a domain.Activity) bool {
		return a.Status == domain.ActivityApproved
	})

	report := ReportActuals{
		ByItem:     make(map[string]float64, len(approved.ByItem)),
		ByCategory: make(map[domain.ExpenseCategory]float64, len(domain.ExpenseCategories)),
	}

	allocated := make(map[string]bool)
	full := domain.ApplyBudgetDefaults(b)
	for _, cat := range domain.ExpenseCategories {
		var sum float64
		for _, it := range full.ExpenseItems(cat) {
			if allocated[it.ID] {
				continue
			}
			allocated[it.ID] = true
			sum += approved.ByItem[it.ID].Cost
		}
		report.ByCategory[cat] = sum
	}

	for _, itemID := range order {
		entry := approved.ByItem[itemID]
		report.InKindValue += entry.ContributedValue
		report.ApprovedHours += entry.Hours
		if entry.Cost == 0 {
			continue
		}
		report.ByItem[itemID] = entry.Cost
		report.TotalActualExpenses += entry.Cost
		if !allocated[itemID] {
			report.Unallocated += entry.Cost
		}
	}

	return report
}
