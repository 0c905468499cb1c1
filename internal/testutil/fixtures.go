package testutil

import (
	"time"

	"github.com/artscollective/grantbook/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithDescription(d string) ProjectOption {
	return func(p *domain.Project) {
		p.Description = d
	}
}

func WithBudget(b domain.DetailedBudget) ProjectOption {
	return func(p *domain.Project) {
		p.Budget = b
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectActive,
		Budget:    domain.NewDetailedBudget(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Budget item options
type ItemOption func(*domain.BudgetItem)

func WithActual(v float64) ItemOption {
	return func(it *domain.BudgetItem) {
		it.ActualAmount = domain.Float64Ptr(v)
	}
}

func WithStatus(s domain.BudgetItemStatus) ItemOption {
	return func(it *domain.BudgetItem) {
		it.Status = s
	}
}

// NewTestRevenueItem returns a pending revenue line.
func NewTestRevenueItem(source string, amount float64, opts ...ItemOption) domain.BudgetItem {
	it := domain.BudgetItem{
		ID:     uuid.New().String(),
		Source: source,
		Amount: amount,
		Status: domain.StatusPending,
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

func NewTestExpenseItem(description string, amount float64) domain.BudgetItem {
	return domain.BudgetItem{
		ID:          uuid.New().String(),
		Description: description,
		Amount:      amount,
	}
}

// Venue options
type VenueOption func(*domain.Venue)

func WithVenueCost(costType domain.VenueCostType, cost float64, period domain.VenueCostPeriod) VenueOption {
	return func(v *domain.Venue) {
		v.DefaultCostType = costType
		v.DefaultCost = cost
		v.DefaultCostPeriod = period
	}
}

func NewTestVenue(name string, capacity int, opts ...VenueOption) *domain.Venue {
	v := &domain.Venue{
		ID:                uuid.New().String(),
		Name:              name,
		Capacity:          capacity,
		DefaultCostType:   domain.CostFree,
		DefaultCostPeriod: domain.PeriodFlatRate,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Event options
type EventOption func(*domain.Event)

func AtVenue(venueID string) EventOption {
	return func(e *domain.Event) {
		e.VenueID = &venueID
	}
}

func WithCategory(c string) EventOption {
	return func(e *domain.Event) {
		e.Category = c
	}
}

func WithEventStatus(s domain.EventStatus) EventOption {
	return func(e *domain.Event) {
		e.Status = s
	}
}

func WithDates(start, end time.Time) EventOption {
	return func(e *domain.Event) {
		e.StartDate = start
		e.EndDate = end
	}
}

func WithTimes(start, end string) EventOption {
	return func(e *domain.Event) {
		e.IsAllDay = false
		e.StartTime = start
		e.EndTime = end
	}
}

func AsTemplate() EventOption {
	return func(e *domain.Event) {
		e.IsTemplate = true
	}
}

func WithCostOverride(c domain.VenueCost) EventOption {
	return func(e *domain.Event) {
		e.VenueCostOverride = &c
	}
}

// NewTestEvent returns a scheduled, all-day, one-day performance.
func NewTestEvent(projectID, title string, opts ...EventOption) *domain.Event {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	e := &domain.Event{
		ID:        uuid.New().String(),
		ProjectID: &projectID,
		Title:     title,
		Status:    domain.EventScheduled,
		Category:  "Performance",
		StartDate: day,
		EndDate:   day,
		IsAllDay:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestTicket(eventID string, price float64, capacity int) *domain.EventTicket {
	return &domain.EventTicket{
		ID:             uuid.New().String(),
		EventID:        eventID,
		TicketTypeID:   "general",
		TicketTypeName: "General admission",
		Price:          price,
		Capacity:       capacity,
	}
}

// Task options
type TaskOption func(*domain.Task)

func WithWorkType(w domain.WorkType) TaskOption {
	return func(t *domain.Task) {
		t.WorkType = w
	}
}

func LinkedTo(budgetItemID string) TaskOption {
	return func(t *domain.Task) {
		t.BudgetItemID = &budgetItemID
	}
}

// NewTestTask returns an unlinked, paid, time-based task.
func NewTestTask(projectID, title string, rate float64, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		Title:      title,
		TaskType:   domain.TaskTimeBased,
		HourlyRate: rate,
		WorkType:   domain.WorkPaid,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestActivity(taskID string, hours float64, status domain.ActivityStatus) *domain.Activity {
	return &domain.Activity{
		ID:       uuid.New().String(),
		TaskID:   taskID,
		MemberID: "member-1",
		Hours:    hours,
		Status:   status,
		Date:     time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
	}
}

func NewTestExpense(projectID string, budgetItemID *string, amount float64) *domain.DirectExpense {
	return &domain.DirectExpense{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		BudgetItemID: budgetItemID,
		Description:  "receipt",
		Amount:       amount,
		Date:         time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
	}
}

func NewTestProjectSession(projectID, name string, expected float64) *domain.SaleSession {
	return &domain.SaleSession{
		ID:              uuid.New().String(),
		Name:            name,
		AssociationType: domain.AssociationProject,
		ProjectID:       &projectID,
		ExpectedRevenue: domain.Float64Ptr(expected),
	}
}

func NewTestEventSession(eventID, name string, expected float64) *domain.SaleSession {
	return &domain.SaleSession{
		ID:              uuid.New().String(),
		Name:            name,
		AssociationType: domain.AssociationEvent,
		EventID:         &eventID,
		ExpectedRevenue: domain.Float64Ptr(expected),
	}
}

func NewTestTransaction(sessionID string, total float64) *domain.SalesTransaction {
	return &domain.SalesTransaction{
		ID:            uuid.New().String(),
		SaleSessionID: sessionID,
		Total:         total,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}
