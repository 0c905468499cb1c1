package importer

import (
	"fmt"
	"time"

	"github.com/artscollective/grantbook/internal/domain"
)

const dateLayout = "2006-01-02"

var (
	validProjectStatuses  = map[string]bool{"active": true, "completed": true, "archived": true}
	validEventStatuses    = map[string]bool{"Scheduled": true, "Confirmed": true, "Completed": true, "Cancelled": true}
	validTaskTypes        = map[string]bool{"Time-Based": true, "Milestone": true}
	validActivityStatuses = map[string]bool{"Pending": true, "Approved": true}
)

// refSets collects the refs declared in a file, per namespace.
type refSets struct {
	revenueItems map[string]bool
	expenseItems map[string]bool
	venues       map[string]bool
	events       map[string]bool
	tasks        map[string]bool
	sessions     map[string]bool
}

// ValidateImportSchema checks a project file before conversion and returns
// every problem found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	refs := refSets{
		revenueItems: make(map[string]bool),
		expenseItems: make(map[string]bool),
		venues:       make(map[string]bool),
		events:       make(map[string]bool),
		tasks:        make(map[string]bool),
		sessions:     make(map[string]bool),
	}

	errs = append(errs, validateProject(&schema.Project)...)
	errs = append(errs, validateBudget(&schema.Budget, &refs)...)
	errs = append(errs, validateVenues(schema.Venues, &refs)...)
	errs = append(errs, validateEvents(schema.Events, &refs)...)
	errs = append(errs, validateTickets(schema.EventTickets, &refs)...)
	errs = append(errs, validateTasks(schema.Tasks, &refs)...)
	errs = append(errs, validateActivities(schema.Activities, &refs)...)
	errs = append(errs, validateExpenses(schema.DirectExpenses, &refs)...)
	errs = append(errs, validateSaleSessions(schema.SaleSessions, &refs)...)
	errs = append(errs, validateTransactions(schema.SalesTransactions, &refs)...)

	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	if p.Status != "" && !validProjectStatuses[p.Status] {
		errs = append(errs, fmt.Errorf("project.status: invalid value %q", p.Status))
	}
	return errs
}

func validateBudget(b *BudgetImport, refs *refSets) []error {
	var errs []error

	for _, group := range b.revenueLines() {
		for i, it := range group.items {
			prefix := fmt.Sprintf("%s[%d]", group.field, i)
			errs = append(errs, validateItemRef(prefix, it.Ref, refs, refs.revenueItems)...)
			errs = append(errs, validateNonNegative(prefix+".amount", it.Amount)...)
			if it.ActualAmount != nil {
				errs = append(errs, validateNonNegative(prefix+".actual_amount", *it.ActualAmount)...)
			}
			if it.Status != "" && !domain.ValidBudgetItemStatuses[domain.BudgetItemStatus(it.Status)] {
				errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, it.Status))
			}
		}
	}

	if b.Revenues.Tickets.ActualRevenue != nil {
		errs = append(errs, validateNonNegative("budget.revenues.tickets.actual_revenue", *b.Revenues.Tickets.ActualRevenue)...)
	}

	for _, group := range b.expenseLines() {
		for i, it := range group.items {
			prefix := fmt.Sprintf("%s[%d]", group.field, i)
			errs = append(errs, validateItemRef(prefix, it.Ref, refs, refs.expenseItems)...)
			errs = append(errs, validateNonNegative(prefix+".amount", it.Amount)...)
			if it.ActualAmount != nil {
				errs = append(errs, fmt.Errorf("%s.actual_amount: expense lines have no actual amount", prefix))
			}
			if it.Status != "" {
				errs = append(errs, fmt.Errorf("%s.status: expense lines have no status", prefix))
			}
		}
	}

	return errs
}

// validateItemRef registers a budget item ref. Revenue and expense refs
// share one namespace so a task link is never ambiguous.
func validateItemRef(prefix, ref string, refs *refSets, into map[string]bool) []error {
	if ref == "" {
		return []error{fmt.Errorf("%s.ref is required", prefix)}
	}
	if refs.revenueItems[ref] || refs.expenseItems[ref] {
		return []error{fmt.Errorf("%s.ref: duplicate ref %q", prefix, ref)}
	}
	into[ref] = true
	return nil
}

func validateVenues(venues []VenueImport, refs *refSets) []error {
	var errs []error
	for i, v := range venues {
		prefix := fmt.Sprintf("venues[%d]", i)
		errs = append(errs, registerRef(prefix, v.Ref, refs.venues)...)
		if v.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if v.Capacity < 0 {
			errs = append(errs, fmt.Errorf("%s.capacity must not be negative", prefix))
		}
		if v.CostType != "" && !domain.ValidVenueCostTypes[domain.VenueCostType(v.CostType)] {
			errs = append(errs, fmt.Errorf("%s.cost_type: invalid value %q", prefix, v.CostType))
		}
		if v.CostPeriod != "" && !domain.ValidVenueCostPeriods[domain.VenueCostPeriod(v.CostPeriod)] {
			errs = append(errs, fmt.Errorf("%s.cost_period: invalid value %q", prefix, v.CostPeriod))
		}
		errs = append(errs, validateNonNegative(prefix+".cost", v.Cost)...)
	}
	return errs
}

func validateEvents(events []EventImport, refs *refSets) []error {
	var errs []error
	for i, e := range events {
		prefix := fmt.Sprintf("events[%d]", i)
		errs = append(errs, registerRef(prefix, e.Ref, refs.events)...)
		if e.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if e.Status != "" && !validEventStatuses[e.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, e.Status))
		}
		if e.VenueRef != nil && *e.VenueRef != "" && !refs.venues[*e.VenueRef] {
			errs = append(errs, fmt.Errorf("%s.venue_ref: ref %q not found in venues", prefix, *e.VenueRef))
		}

		var start time.Time
		if e.StartDate == "" {
			errs = append(errs, fmt.Errorf("%s.start_date is required", prefix))
		} else if t, err := time.Parse(dateLayout, e.StartDate); err != nil {
			errs = append(errs, fmt.Errorf("%s.start_date: invalid date format %q (expected YYYY-MM-DD)", prefix, e.StartDate))
		} else {
			start = t
		}
		if e.EndDate != nil && *e.EndDate != "" {
			end, err := time.Parse(dateLayout, *e.EndDate)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s.end_date: invalid date format %q (expected YYYY-MM-DD)", prefix, *e.EndDate))
			} else if !start.IsZero() && end.Before(start) {
				errs = append(errs, fmt.Errorf("%s.end_date %q must not be before start_date %q", prefix, *e.EndDate, e.StartDate))
			}
		}

		if !e.IsAllDay {
			errs = append(errs, validateClock(prefix+".start_time", e.StartTime)...)
			errs = append(errs, validateClock(prefix+".end_time", e.EndTime)...)
		}

		if o := e.VenueCostOverride; o != nil {
			op := prefix + ".venue_cost_override"
			if !domain.ValidVenueCostTypes[domain.VenueCostType(o.CostType)] {
				errs = append(errs, fmt.Errorf("%s.cost_type: invalid value %q", op, o.CostType))
			}
			if !domain.ValidVenueCostPeriods[domain.VenueCostPeriod(o.Period)] {
				errs = append(errs, fmt.Errorf("%s.period: invalid value %q", op, o.Period))
			}
			errs = append(errs, validateNonNegative(op+".cost", o.Cost)...)
		}
	}
	return errs
}

func validateTickets(tickets []TicketImport, refs *refSets) []error {
	var errs []error
	for i, t := range tickets {
		prefix := fmt.Sprintf("event_tickets[%d]", i)
		if t.EventRef == "" {
			errs = append(errs, fmt.Errorf("%s.event_ref is required", prefix))
		} else if !refs.events[t.EventRef] {
			errs = append(errs, fmt.Errorf("%s.event_ref: ref %q not found in events", prefix, t.EventRef))
		}
		if t.TicketType == "" {
			errs = append(errs, fmt.Errorf("%s.ticket_type is required", prefix))
		}
		errs = append(errs, validateNonNegative(prefix+".price", t.Price)...)
		if t.Capacity < 0 {
			errs = append(errs, fmt.Errorf("%s.capacity must not be negative", prefix))
		}
		if t.SoldCount < 0 {
			errs = append(errs, fmt.Errorf("%s.sold_count must not be negative", prefix))
		}
	}
	return errs
}

func validateTasks(tasks []TaskImport, refs *refSets) []error {
	var errs []error
	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		errs = append(errs, registerRef(prefix, t.Ref, refs.tasks)...)
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.TaskType != "" && !validTaskTypes[t.TaskType] {
			errs = append(errs, fmt.Errorf("%s.task_type: invalid value %q", prefix, t.TaskType))
		}
		if t.WorkType != "" && !domain.ValidWorkTypes[domain.WorkType(t.WorkType)] {
			errs = append(errs, fmt.Errorf("%s.work_type: invalid value %q", prefix, t.WorkType))
		}
		errs = append(errs, validateNonNegative(prefix+".estimated_hours", t.EstimatedHours)...)
		errs = append(errs, validateNonNegative(prefix+".hourly_rate", t.HourlyRate)...)

		if t.BudgetItemRef != nil && *t.BudgetItemRef != "" {
			switch {
			case t.TaskType == string(domain.TaskMilestone):
				errs = append(errs, fmt.Errorf("%s.budget_item_ref: milestone tasks cannot link to a budget item", prefix))
			case refs.revenueItems[*t.BudgetItemRef]:
				errs = append(errs, fmt.Errorf("%s.budget_item_ref: ref %q is a revenue line", prefix, *t.BudgetItemRef))
			case !refs.expenseItems[*t.BudgetItemRef]:
				errs = append(errs, fmt.Errorf("%s.budget_item_ref: ref %q not found in budget expenses", prefix, *t.BudgetItemRef))
			}
		}
	}
	return errs
}

func validateActivities(activities []ActivityImport, refs *refSets) []error {
	var errs []error
	for i, a := range activities {
		prefix := fmt.Sprintf("activities[%d]", i)
		if a.TaskRef == "" {
			errs = append(errs, fmt.Errorf("%s.task_ref is required", prefix))
		} else if !refs.tasks[a.TaskRef] {
			errs = append(errs, fmt.Errorf("%s.task_ref: ref %q not found in tasks", prefix, a.TaskRef))
		}
		errs = append(errs, validateNonNegative(prefix+".hours", a.Hours)...)
		if a.Status != "" && !validActivityStatuses[a.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, a.Status))
		}
		errs = append(errs, validateOptionalDate(prefix+".date", a.Date)...)
	}
	return errs
}

func validateExpenses(expenses []ExpenseImport, refs *refSets) []error {
	var errs []error
	for i, e := range expenses {
		prefix := fmt.Sprintf("direct_expenses[%d]", i)
		if e.BudgetItemRef != nil && *e.BudgetItemRef != "" && !refs.expenseItems[*e.BudgetItemRef] {
			errs = append(errs, fmt.Errorf("%s.budget_item_ref: ref %q not found in budget expenses", prefix, *e.BudgetItemRef))
		}
		errs = append(errs, validateNonNegative(prefix+".amount", e.Amount)...)
		errs = append(errs, validateOptionalDate(prefix+".date", e.Date)...)
	}
	return errs
}

func validateSaleSessions(sessions []SaleSessionImport, refs *refSets) []error {
	var errs []error
	for i, s := range sessions {
		prefix := fmt.Sprintf("sale_sessions[%d]", i)
		errs = append(errs, registerRef(prefix, s.Ref, refs.sessions)...)
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		hasEvent := s.EventRef != nil && *s.EventRef != ""
		switch domain.AssociationType(s.AssociationType) {
		case domain.AssociationEvent:
			if !hasEvent {
				errs = append(errs, fmt.Errorf("%s.event_ref is required for event sessions", prefix))
			} else if !refs.events[*s.EventRef] {
				errs = append(errs, fmt.Errorf("%s.event_ref: ref %q not found in events", prefix, *s.EventRef))
			}
		case domain.AssociationProject, domain.AssociationGeneral:
			if hasEvent {
				errs = append(errs, fmt.Errorf("%s.event_ref: only event sessions reference an event", prefix))
			}
		case "":
			errs = append(errs, fmt.Errorf("%s.association_type is required", prefix))
		default:
			errs = append(errs, fmt.Errorf("%s.association_type: invalid value %q", prefix, s.AssociationType))
		}
		if s.ExpectedRevenue != nil {
			errs = append(errs, validateNonNegative(prefix+".expected_revenue", *s.ExpectedRevenue)...)
		}
	}
	return errs
}

func validateTransactions(txs []TransactionImport, refs *refSets) []error {
	var errs []error
	for i, t := range txs {
		prefix := fmt.Sprintf("sales_transactions[%d]", i)
		if t.SessionRef == "" {
			errs = append(errs, fmt.Errorf("%s.session_ref is required", prefix))
		} else if !refs.sessions[t.SessionRef] {
			errs = append(errs, fmt.Errorf("%s.session_ref: ref %q not found in sale_sessions", prefix, t.SessionRef))
		}
		errs = append(errs, validateNonNegative(prefix+".total", t.Total)...)
	}
	return errs
}

func registerRef(prefix, ref string, seen map[string]bool) []error {
	if ref == "" {
		return []error{fmt.Errorf("%s.ref is required", prefix)}
	}
	if seen[ref] {
		return []error{fmt.Errorf("%s.ref: duplicate ref %q", prefix, ref)}
	}
	seen[ref] = true
	return nil
}

func validateNonNegative(field string, v float64) []error {
	if v < 0 {
		return []error{fmt.Errorf("%s must not be negative", field)}
	}
	return nil
}

func validateOptionalDate(field, dateStr string) []error {
	if dateStr == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, dateStr)}
	}
	return nil
}

func validateClock(field, clock string) []error {
	if clock == "" {
		return nil
	}
	if _, err := time.Parse("15:04", clock); err != nil {
		return []error{fmt.Errorf("%s: invalid time %q (expected HH:MM)", field, clock)}
	}
	return nil
}
