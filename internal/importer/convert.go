package importer

import (
	"fmt"
	"time"

	"github.com/artscollective/grantbook/internal/domain"
	"github.com/google/uuid"
)

// GeneratedProject holds every record produced from one project file.
// Project.Budget carries the converted budget lines.
type GeneratedProject struct {
	Project      *domain.Project
	Venues       []domain.Venue
	Events       []domain.Event
	Tickets      []domain.EventTicket
	Tasks        []domain.Task
	Activities   []domain.Activity
	Expenses     []domain.DirectExpense
	SaleSessions []domain.SaleSession
	Transactions []domain.SalesTransaction
}

// BudgetItemCount returns the number of budget lines across all categories.
func (g *GeneratedProject) BudgetItemCount() int {
	b := &g.Project.Budget
	n := 0
	for _, cat := range domain.ItemRevenueCategories {
		n += len(b.RevenueItems(cat))
	}
	for _, cat := range domain.ExpenseCategories {
		n += len(b.ExpenseItems(cat))
	}
	return n
}

// Convert transforms a validated ImportSchema into domain records with
// fresh ids. Call ValidateImportSchema first; Convert assumes a valid file.
func Convert(schema *ImportSchema) (*GeneratedProject, error) {
	return convertAt(schema, time.Now().UTC().Truncate(time.Second))
}

func convertAt(schema *ImportSchema, now time.Time) (*GeneratedProject, error) {
	project := &domain.Project{
		ID:          uuid.New().String(),
		Name:        schema.Project.Name,
		Description: schema.Project.Description,
		Status:      domain.ProjectStatus(domain.CoalesceStr(schema.Project.Status, string(domain.ProjectActive))),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	gen := &GeneratedProject{Project: project}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	itemIDs := make(map[string]string) // ref -> UUID
	project.Budget = convertBudget(&schema.Budget, itemIDs)

	venueIDs := make(map[string]string, len(schema.Venues))
	for _, v := range schema.Venues {
		id := uuid.New().String()
		venueIDs[v.Ref] = id
		gen.Venues = append(gen.Venues, domain.Venue{
			ID:                id,
			Name:              v.Name,
			Capacity:          v.Capacity,
			DefaultCostType:   domain.VenueCostType(domain.CoalesceStr(v.CostType, string(domain.CostFree))),
			DefaultCost:       v.Cost,
			DefaultCostPeriod: domain.VenueCostPeriod(domain.CoalesceStr(v.CostPeriod, string(domain.PeriodFlatRate))),
		})
	}

	eventIDs := make(map[string]string, len(schema.Events))
	for _, e := range schema.Events {
		ev, err := convertEvent(e, project.ID, venueIDs)
		if err != nil {
			return nil, err
		}
		eventIDs[e.Ref] = ev.ID
		gen.Events = append(gen.Events, ev)
	}

	ticketTypeIDs := make(map[string]string)
	for _, t := range schema.EventTickets {
		eventID, ok := eventIDs[t.EventRef]
		if !ok {
			return nil, fmt.Errorf("event_ref %q not found for ticket %q", t.EventRef, t.TicketType)
		}
		typeID, ok := ticketTypeIDs[t.TicketType]
		if !ok {
			typeID = uuid.New().String()
			ticketTypeIDs[t.TicketType] = typeID
		}
		gen.Tickets = append(gen.Tickets, domain.EventTicket{
			ID:             uuid.New().String(),
			EventID:        eventID,
			TicketTypeID:   typeID,
			TicketTypeName: t.TicketType,
			Price:          t.Price,
			Capacity:       t.Capacity,
			SoldCount:      t.SoldCount,
		})
	}

	taskIDs := make(map[string]string, len(schema.Tasks))
	for _, t := range schema.Tasks {
		id := uuid.New().String()
		taskIDs[t.Ref] = id
		task := domain.Task{
			ID:             id,
			ProjectID:      project.ID,
			Title:          t.Title,
			TaskType:       domain.TaskType(domain.CoalesceStr(t.TaskType, string(domain.TaskTimeBased))),
			EstimatedHours: t.EstimatedHours,
			HourlyRate:     t.HourlyRate,
			WorkType:       domain.WorkType(domain.CoalesceStr(t.WorkType, string(domain.WorkPaid))),
			CreatedAt:      now,
		}
		if ref := domain.StrFromPtr(t.BudgetItemRef); ref != "" {
			itemID, ok := itemIDs[ref]
			if !ok {
				return nil, fmt.Errorf("budget_item_ref %q not found for task %q", ref, t.Ref)
			}
			task.BudgetItemID = &itemID
		}
		gen.Tasks = append(gen.Tasks, task)
	}

	for _, a := range schema.Activities {
		taskID, ok := taskIDs[a.TaskRef]
		if !ok {
			return nil, fmt.Errorf("task_ref %q not found for activity", a.TaskRef)
		}
		gen.Activities = append(gen.Activities, domain.Activity{
			ID:       uuid.New().String(),
			TaskID:   taskID,
			MemberID: a.MemberID,
			Hours:    a.Hours,
			Status:   domain.ActivityStatus(domain.CoalesceStr(a.Status, string(domain.ActivityPending))),
			Date:     parseDateOr(a.Date, today),
		})
	}

	for _, e := range schema.DirectExpenses {
		exp := domain.DirectExpense{
			ID:          uuid.New().String(),
			ProjectID:   project.ID,
			Description: e.Description,
			Amount:      e.Amount,
			Date:        parseDateOr(e.Date, today),
		}
		if ref := domain.StrFromPtr(e.BudgetItemRef); ref != "" {
			itemID, ok := itemIDs[ref]
			if !ok {
				return nil, fmt.Errorf("budget_item_ref %q not found for direct expense", ref)
			}
			exp.BudgetItemID = &itemID
		}
		gen.Expenses = append(gen.Expenses, exp)
	}

	sessionIDs := make(map[string]string, len(schema.SaleSessions))
	for _, s := range schema.SaleSessions {
		id := uuid.New().String()
		sessionIDs[s.Ref] = id
		session := domain.SaleSession{
			ID:              id,
			Name:            s.Name,
			AssociationType: domain.AssociationType(s.AssociationType),
			ExpectedRevenue: s.ExpectedRevenue,
		}
		switch session.AssociationType {
		case domain.AssociationProject:
			session.ProjectID = &project.ID
		case domain.AssociationEvent:
			eventID, ok := eventIDs[domain.StrFromPtr(s.EventRef)]
			if !ok {
				return nil, fmt.Errorf("event_ref %q not found for sale session %q", domain.StrFromPtr(s.EventRef), s.Ref)
			}
			session.EventID = &eventID
		}
		gen.SaleSessions = append(gen.SaleSessions, session)
	}

	for _, t := range schema.SalesTransactions {
		sessionID, ok := sessionIDs[t.SessionRef]
		if !ok {
			return nil, fmt.Errorf("session_ref %q not found for sales transaction", t.SessionRef)
		}
		gen.Transactions = append(gen.Transactions, domain.SalesTransaction{
			ID:            uuid.New().String(),
			SaleSessionID: sessionID,
			Total:         t.Total,
			CreatedAt:     now,
		})
	}

	return gen, nil
}

func convertBudget(b *BudgetImport, itemIDs map[string]string) domain.DetailedBudget {
	out := domain.NewDetailedBudget()
	out.Revenues.Grants = convertItems(b.Revenues.Grants, itemIDs, true)
	out.Revenues.Sales = convertItems(b.Revenues.Sales, itemIDs, true)
	out.Revenues.Fundraising = convertItems(b.Revenues.Fundraising, itemIDs, true)
	out.Revenues.Contributions = convertItems(b.Revenues.Contributions, itemIDs, true)
	out.Revenues.Tickets.ActualRevenue = domain.Float64Ptr(domain.Float64FromPtrWithDefault(0, b.Revenues.Tickets.ActualRevenue))

	out.Expenses.ProfessionalFees = convertItems(b.Expenses.ProfessionalFees, itemIDs, false)
	out.Expenses.Travel = convertItems(b.Expenses.Travel, itemIDs, false)
	out.Expenses.Production = convertItems(b.Expenses.Production, itemIDs, false)
	out.Expenses.Administration = convertItems(b.Expenses.Administration, itemIDs, false)
	out.Expenses.Research = convertItems(b.Expenses.Research, itemIDs, false)
	out.Expenses.ProfessionalDevelopment = convertItems(b.Expenses.ProfessionalDevelopment, itemIDs, false)
	return out
}

func convertItems(items []ItemImport, itemIDs map[string]string, revenue bool) []domain.BudgetItem {
	out := make([]domain.BudgetItem, 0, len(items))
	for _, it := range items {
		id := uuid.New().String()
		itemIDs[it.Ref] = id
		item := domain.BudgetItem{
			ID:          id,
			Source:      it.Source,
			Description: it.Description,
			Amount:      it.Amount,
		}
		if revenue {
			if it.ActualAmount != nil {
				item.ActualAmount = domain.Float64Ptr(*it.ActualAmount)
			}
			item.Status = domain.BudgetItemStatus(it.Status)
		}
		out = append(out, item)
	}
	return out
}

func convertEvent(e EventImport, projectID string, venueIDs map[string]string) (domain.Event, error) {
	start, err := time.Parse(dateLayout, e.StartDate)
	if err != nil {
		return domain.Event{}, fmt.Errorf("parsing start_date of event %q: %w", e.Ref, err)
	}
	pid := projectID
	ev := domain.Event{
		ID:         uuid.New().String(),
		ProjectID:  &pid,
		Title:      e.Title,
		Status:     domain.EventStatus(domain.CoalesceStr(e.Status, string(domain.EventScheduled))),
		Category:   e.Category,
		StartDate:  start,
		EndDate:    parseDateOr(domain.StrFromPtr(e.EndDate), time.Time{}),
		IsAllDay:   e.IsAllDay,
		IsTemplate: e.IsTemplate,
	}
	if !e.IsAllDay {
		ev.StartTime = e.StartTime
		ev.EndTime = e.EndTime
	}
	if ref := domain.StrFromPtr(e.VenueRef); ref != "" {
		venueID, ok := venueIDs[ref]
		if !ok {
			return domain.Event{}, fmt.Errorf("venue_ref %q not found for event %q", ref, e.Ref)
		}
		ev.VenueID = &venueID
	}
	if o := e.VenueCostOverride; o != nil {
		ev.VenueCostOverride = &domain.VenueCost{
			CostType: domain.VenueCostType(o.CostType),
			Cost:     o.Cost,
			Period:   domain.VenueCostPeriod(o.Period),
		}
	}
	return ev, nil
}

// parseDateOr parses a YYYY-MM-DD date, returning fallback when s is empty
// or malformed.
func parseDateOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fallback
	}
	return t
}
