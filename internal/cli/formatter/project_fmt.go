package formatter

import (
	"fmt"
	"strings"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/budget"
	"github.com/artscollective/grantbook/internal/domain"
)

// FormatProjectList renders projects inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			ProjectStatusPill(p.Status),
			p.UpdatedAt.Format("Jan 2, 2006"),
		})
	}
	return RenderBox("Projects", RenderTable([]Column{Left("ID"), Left("NAME"), Left("STATUS"), Left("UPDATED")}, rows))
}

// FormatProjectShow renders project metadata with a count of budget lines.
func FormatProjectShow(p *domain.Project) string {
	revenue, expense := 0, 0
	for _, cat := range domain.ItemRevenueCategories {
		revenue += len(p.Budget.RevenueItems(cat))
	}
	for _, cat := range domain.ExpenseCategories {
		expense += len(p.Budget.ExpenseItems(cat))
	}

	pairs := [][2]string{
		{"ID", p.ID},
		{"Status", ProjectStatusPill(p.Status)},
		{"Revenue lines", fmt.Sprintf("%d", revenue)},
		{"Expense lines", fmt.Sprintf("%d", expense)},
		{"Created", p.CreatedAt.Format("Jan 2, 2006 15:04")},
		{"Updated", p.UpdatedAt.Format("Jan 2, 2006 15:04")},
	}
	body := renderPairs(pairs)
	if strings.TrimSpace(p.Description) != "" {
		body = p.Description + "\n\n" + body
	}
	return RenderBox(p.Name, strings.TrimRight(body, "\n"))
}

// FormatSnapshotList renders a project's proposal snapshots, newest first.
func FormatSnapshotList(snaps []*domain.ProposalSnapshot) string {
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{Dim(s.ID), Bold(s.Title), s.CreatedAt.Format("Jan 2, 2006 15:04")})
	}
	return RenderTable([]Column{Left("ID"), Left("TITLE"), Left("TAKEN")}, rows)
}

// FormatSnapshot renders a snapshot with the ticket metrics frozen in it.
func FormatSnapshot(d Display, s *domain.ProposalSnapshot, metrics budget.TicketRevenueResult) string {
	head := fmt.Sprintf("%s  %s\n%s", Bold(s.Title), TruncID(s.ID), Dim("taken "+s.CreatedAt.Format("Jan 2, 2006 15:04")))
	return RenderBox("Proposal snapshot", head+"\n\n"+strings.TrimRight(FormatTickets(d, metrics), "\n"))
}

// FormatImportResult summarizes what an import created.
func FormatImportResult(r *app.ImportResult) string {
	counts := []struct {
		n    int
		noun string
	}{
		{r.BudgetItemCount, "budget lines"},
		{r.VenueCount, "venues"},
		{r.EventCount, "events"},
		{r.TicketCount, "event tickets"},
		{r.TaskCount, "tasks"},
		{r.ActivityCount, "activities"},
		{r.ExpenseCount, "direct expenses"},
		{r.SaleSessionCount, "sale sessions"},
		{r.TransactionCount, "sales transactions"},
	}
	var parts []string
	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c.n, c.noun))
		}
	}
	line := fmt.Sprintf("Imported project %s %s", Bold(r.Project.Name), TruncID(r.Project.ID))
	if len(parts) == 0 {
		return line
	}
	return line + "\n" + Dim(strings.Join(parts, ", "))
}
