package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/budget"
	"github.com/artscollective/grantbook/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatBudgetView renders the composed budget of one project: the
// summary followed by revenue and expense lines.
func FormatBudgetView(d Display, resp *app.BudgetViewResponse) string {
	title := fmt.Sprintf("%s  %s", Bold(resp.Project.Name), TruncID(resp.Project.ID))
	return strings.Join([]string{
		RenderBox("Budget", title+"\n\n"+FormatSummary(d, resp.Evaluation)),
		Header("Revenue"),
		FormatRevenueLines(d, resp.Budget, resp.Evaluation),
		Header("Expenses"),
		FormatExpenseLines(d, resp.Budget, resp.Evaluation),
	}, "\n")
}

// FormatSummary renders projected against actual totals and the balances.
func FormatSummary(d Display, ev budget.Evaluation) string {
	s := ev.Summary
	rows := [][]string{
		{"Revenue", d.Money(s.TotalProjectedRevenue), d.Money(s.TotalActualRevenue)},
		{"Expenses", d.Money(s.TotalProjectedExpenses), d.Money(s.TotalActualExpenses)},
		{Bold("Balance"), d.Balance(s.ProjectedBalance), d.Balance(s.ActualBalance)},
	}
	out := RenderTable([]Column{Left(""), Right("PROJECTED"), Right("ACTUAL")}, rows)

	var notes []string
	if s.InKindVenueCost > 0 {
		notes = append(notes, "In-kind venues: "+d.Money(s.InKindVenueCost))
	}
	if s.TotalContributedValue > 0 {
		notes = append(notes, "Contributed work: "+d.Money(s.TotalContributedValue))
	}
	if len(notes) > 0 {
		out += "\n" + Dim(strings.Join(notes, "   "))
	}
	return out
}

// FormatRevenueLines lists revenue lines grouped by category. Tickets and
// sales show their projections in the category row.
func FormatRevenueLines(d Display, b domain.DetailedBudget, ev budget.Evaluation) string {
	cols := []Column{Left("ID"), Left("LINE"), Left("STATUS"), Right("BUDGETED"), Right("ACTUAL")}
	var rows [][]string

	for _, cat := range []domain.RevenueCategory{
		domain.RevenueGrants, domain.RevenueTickets, domain.RevenueSales,
		domain.RevenueFundraising, domain.RevenueContributions,
	} {
		budgeted, actual := ev.Totals.RevenueCategoryTotals(cat)
		note := ""
		switch cat {
		case domain.RevenueTickets:
			budgeted = ev.Tickets.ProjectedRevenue
			note = Dim("projected from events")
		case domain.RevenueSales:
			budgeted = ev.Sales.TotalEstimatedRevenue
			actual = ev.Sales.TotalActualRevenue
			note = Dim("from sale sessions")
		}
		rows = append(rows, []string{"", Bold(d.RevenueLabel(cat)), note, Bold(d.Money(budgeted)), Bold(d.Money(actual))})

		for _, it := range b.RevenueItems(cat) {
			actualStr := Dim("--")
			if it.ActualAmount != nil {
				actualStr = d.Money(*it.ActualAmount)
			}
			amount := d.Money(it.Amount)
			if it.Status == domain.StatusDenied {
				amount = Dim(amount)
			}
			rows = append(rows, []string{TruncID(it.ID), "  " + lineName(it), ItemStatusPill(it.Status), amount, actualStr})
		}
	}
	return RenderTable(cols, rows)
}

// FormatExpenseLines lists expense lines grouped by category with the live
// cost, contributed value and hours logged against each.
func FormatExpenseLines(d Display, b domain.DetailedBudget, ev budget.Evaluation) string {
	cols := []Column{Left("ID"), Left("LINE"), Right("BUDGETED"), Right("PAID"), Right("CONTRIBUTED"), Right("HOURS")}
	var rows [][]string

	for _, cat := range domain.ExpenseCategories {
		items := b.ExpenseItems(cat)
		var sum budget.ItemActuals
		lines := make([][]string, 0, len(items))
		for _, it := range items {
			a := ev.Actuals.Item(it.ID)
			sum.Cost += a.Cost
			sum.ContributedValue += a.ContributedValue
			sum.Hours += a.Hours
			lines = append(lines, []string{
				TruncID(it.ID), "  " + lineName(it), d.Money(it.Amount),
				d.Money(a.Cost), d.Money(a.ContributedValue), FormatHours(a.Hours),
			})
		}
		rows = append(rows, []string{
			"", Bold(d.ExpenseLabel(cat)), Bold(d.Money(ev.Totals.ExpenseCategoryTotal(cat))),
			Bold(d.Money(sum.Cost)), Bold(d.Money(sum.ContributedValue)), Bold(FormatHours(sum.Hours)),
		})
		rows = append(rows, lines...)
	}

	if ev.VenueCosts.Cash > 0 {
		rows = append(rows, []string{"", Bold("Venue rentals"), Bold(d.Money(ev.VenueCosts.Cash)), Dim("--"), Dim("--"), Dim("--")})
	}
	return RenderTable(cols, rows)
}

// FormatVenueCosts renders the per-event venue cost projection.
func FormatVenueCosts(d Display, v budget.VenueCostProjection) string {
	if len(v.Events) == 0 {
		return Dim("No planned events with venue costs.")
	}
	rows := make([][]string, 0, len(v.Events))
	for _, e := range v.Events {
		rows = append(rows, []string{
			TruncID(e.EventID), e.Title, string(e.CostType), string(e.Period),
			fmt.Sprintf("%d", e.Days), FormatHours(e.Hours), d.Money(e.Amount),
		})
	}
	out := RenderTable([]Column{
		Left("ID"), Left("EVENT"), Left("COST"), Left("PERIOD"), Right("DAYS"), Right("HOURS"), Right("AMOUNT"),
	}, rows)
	return out + "\n" + renderPairs([][2]string{
		{"Cash", d.Money(v.Cash)},
		{"In-kind", d.Money(v.InKind)},
	})
}

// FormatTickets renders ticket revenue metrics.
func FormatTickets(d Display, t budget.TicketRevenueResult) string {
	return renderPairs([][2]string{
		{"Presentations", fmt.Sprintf("%d", t.NumberOfPresentations)},
		{"Avg venue capacity", fmt.Sprintf("%d", t.AverageVenueCapacity)},
		{"Projected audience", fmt.Sprintf("%d", t.ProjectedAudience)},
		{"Sold through", RenderProgress(t.AveragePctSold/100, 20)},
		{"Avg ticket price", d.Money(t.AverageTicketPrice)},
		{"Projected revenue", Bold(d.Money(t.ProjectedRevenue))},
	})
}

// FormatActuals renders the live reconciliation, one row per budget line,
// in budget order. Lines not found in b are listed last by ID.
func FormatActuals(d Display, b domain.DetailedBudget, a budget.ActualsResult) string {
	if len(a.ByItem) == 0 {
		return Dim("No activities or expenses logged.")
	}
	var rows [][]string
	for _, id := range orderedItemIDs(b, keysOf(a.ByItem)) {
		entry := a.ByItem[id]
		rows = append(rows, []string{
			TruncID(id), describeItem(d, b, id),
			d.Money(entry.Cost), d.Money(entry.ContributedValue), FormatHours(entry.Hours),
		})
	}
	out := RenderTable([]Column{Left("ID"), Left("LINE"), Right("PAID"), Right("CONTRIBUTED"), Right("HOURS")}, rows)
	return out + "\n" + renderPairs([][2]string{
		{"Paid expenses", Bold(d.Money(a.TotalActualPaidExpenses))},
		{"Contributed value", d.Money(a.TotalContributedValue)},
	})
}

// FormatReportActuals renders the approved-only reconciliation used in
// final reports.
func FormatReportActuals(d Display, a budget.ReportActuals) string {
	rows := make([][]string, 0, len(domain.ExpenseCategories))
	for _, cat := range domain.ExpenseCategories {
		rows = append(rows, []string{d.ExpenseLabel(cat), d.Money(a.ByCategory[cat])})
	}
	out := RenderTable([]Column{Left("CATEGORY"), Right("PAID")}, rows)
	return out + "\n" + renderPairs([][2]string{
		{"Unallocated", d.Money(a.Unallocated)},
		{"Total expenses", Bold(d.Money(a.TotalActualExpenses))},
		{"In-kind value", d.Money(a.InKindValue)},
		{"Approved hours", FormatHours(a.ApprovedHours)},
	})
}

// FormatSales renders the per-session sales breakdown.
func FormatSales(d Display, s budget.SalesRevenueResult) string {
	if len(s.Sessions) == 0 {
		return Dim("No sale sessions for this project.")
	}
	rows := make([][]string, 0, len(s.Sessions)+1)
	for _, sess := range s.Sessions {
		rows = append(rows, []string{
			TruncID(sess.ID), sess.Name, d.Money(sess.EstimatedRevenue), d.Money(sess.ActualRevenue),
			d.SignedMoney(sess.ActualRevenue - sess.EstimatedRevenue),
		})
	}
	rows = append(rows, []string{
		"", Bold("Total"), Bold(d.Money(s.TotalEstimatedRevenue)), Bold(d.Money(s.TotalActualRevenue)),
		Bold(d.SignedMoney(s.TotalActualRevenue - s.TotalEstimatedRevenue)),
	})
	return RenderTable([]Column{Left("ID"), Left("SESSION"), Right("ESTIMATED"), Right("ACTUAL"), Right("VARIANCE")}, rows)
}

// FormatFinalReport renders budgeted against actual per category.
func FormatFinalReport(d Display, resp *app.FinalReportResponse) string {
	r := resp.Report
	cols := []Column{Left("CATEGORY"), Right("BUDGETED"), Right("ACTUAL"), Right("VARIANCE")}

	revRows := make([][]string, 0, len(r.Revenues))
	for _, c := range r.Revenues {
		revRows = append(revRows, comparisonRow(d, d.RevenueLabel(domain.RevenueCategory(c.Category)), c))
	}
	expRows := make([][]string, 0, len(r.Expenses)+1)
	for _, c := range r.Expenses {
		expRows = append(expRows, comparisonRow(d, d.ExpenseLabel(domain.ExpenseCategory(c.Category)), c))
	}
	if r.UnallocatedExpenses > 0 {
		expRows = append(expRows, []string{Dim("Unallocated"), Dim("--"), d.Money(r.UnallocatedExpenses), Dim("--")})
	}

	title := fmt.Sprintf("%s  %s", Bold(resp.Project.Name), TruncID(resp.Project.ID))
	return strings.Join([]string{
		RenderBox("Final report", title),
		Header("Revenue"),
		RenderTable(cols, revRows),
		Header("Expenses"),
		RenderTable(cols, expRows),
		renderPairs([][2]string{
			{"Total revenue", Bold(d.Money(r.TotalActualRevenue))},
			{"Total expenses", Bold(d.Money(r.TotalActualExpenses))},
			{"Balance", d.Balance(r.Balance)},
			{"In-kind value", d.Money(r.InKindValue)},
			{"Approved hours", FormatHours(r.ApprovedHours)},
		}),
	}, "\n")
}

func comparisonRow(d Display, label string, c budget.CategoryComparison) []string {
	return []string{label, d.Money(c.Budgeted), d.Money(c.Actual), d.SignedMoney(c.Variance)}
}

func lineName(it domain.BudgetItem) string {
	switch {
	case it.Source != "" && it.Description != "":
		return it.Source + Dim(" · "+it.Description)
	case it.Source != "":
		return it.Source
	case it.Description != "":
		return it.Description
	default:
		return Dim("(unnamed)")
	}
}

func describeItem(d Display, b domain.DetailedBudget, id string) string {
	loc, ok := b.FindItem(id)
	if !ok {
		return Dim("(not in budget)")
	}
	if loc.Kind == domain.KindRevenue {
		return lineName(b.RevenueItems(loc.RevenueCategory)[loc.Index]) + Dim(" · "+d.RevenueLabel(loc.RevenueCategory))
	}
	return lineName(b.ExpenseItems(loc.ExpenseCategory)[loc.Index]) + Dim(" · "+d.ExpenseLabel(loc.ExpenseCategory))
}

// orderedItemIDs sorts ids by their position in b, with unknown ids last.
func orderedItemIDs(b domain.DetailedBudget, ids []string) []string {
	pos := make(map[string]int)
	n := 0
	for _, cat := range domain.ItemRevenueCategories {
		for _, it := range b.RevenueItems(cat) {
			pos[it.ID] = n
			n++
		}
	}
	for _, cat := range domain.ExpenseCategories {
		for _, it := range b.ExpenseItems(cat) {
			pos[it.ID] = n
			n++
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, iok := pos[ids[i]]
		pj, jok := pos[ids[j]]
		switch {
		case iok && jok:
			return pi < pj
		case iok != jok:
			return iok
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}

func keysOf[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// renderPairs lays out label/value pairs with aligned labels.
func renderPairs(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if w := lipgloss.Width(p[0]); w > width {
			width = w
		}
	}
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(StyleDim.Render(p[0] + strings.Repeat(" ", width-lipgloss.Width(p[0]))))
		b.WriteString("  ")
		b.WriteString(p[1])
		b.WriteString("\n")
	}
	return b.String()
}
