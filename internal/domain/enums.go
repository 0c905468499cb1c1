package domain

type BudgetItemStatus string

const (
	StatusPending  BudgetItemStatus = "Pending"
	StatusApproved BudgetItemStatus = "Approved"
	StatusDenied   BudgetItemStatus = "Denied"
)

// ValidBudgetItemStatuses is the canonical set of accepted revenue item statuses.
var ValidBudgetItemStatuses = map[BudgetItemStatus]bool{
	StatusPending: true, StatusApproved: true, StatusDenied: true,
}

type BudgetKind string

const (
	KindRevenue BudgetKind = "revenue"
	KindExpense BudgetKind = "expense"
)

type RevenueCategory string

const (
	RevenueGrants        RevenueCategory = "grants"
	RevenueTickets       RevenueCategory = "tickets"
	RevenueSales         RevenueCategory = "sales"
	RevenueFundraising   RevenueCategory = "fundraising"
	RevenueContributions RevenueCategory = "contributions"
)

// ItemRevenueCategories lists the revenue categories that hold line items,
// in display order. Tickets is excluded: its budgeted figure is derived.
var ItemRevenueCategories = []RevenueCategory{
	RevenueGrants, RevenueSales, RevenueFundraising, RevenueContributions,
}

type ExpenseCategory string

const (
	ExpenseProfessionalFees        ExpenseCategory = "professionalFees"
	ExpenseTravel                  ExpenseCategory = "travel"
	ExpenseProduction              ExpenseCategory = "production"
	ExpenseAdministration          ExpenseCategory = "administration"
	ExpenseResearch                ExpenseCategory = "research"
	ExpenseProfessionalDevelopment ExpenseCategory = "professionalDevelopment"
)

// ExpenseCategories lists every expense category in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseProfessionalFees,
	ExpenseTravel,
	ExpenseProduction,
	ExpenseAdministration,
	ExpenseResearch,
	ExpenseProfessionalDevelopment,
}

type TaskType string

const (
	TaskTimeBased TaskType = "Time-Based"
	TaskMilestone TaskType = "Milestone"
)

type WorkType string

const (
	WorkPaid      WorkType = "Paid"
	WorkInKind    WorkType = "In-Kind"
	WorkVolunteer WorkType = "Volunteer"
)

// ValidWorkTypes is the canonical set of accepted task work types.
var ValidWorkTypes = map[WorkType]bool{
	WorkPaid: true, WorkInKind: true, WorkVolunteer: true,
}

type ActivityStatus string

const (
	ActivityPending  ActivityStatus = "Pending"
	ActivityApproved ActivityStatus = "Approved"
)

type EventStatus string

const (
	EventScheduled EventStatus = "Scheduled"
	EventConfirmed EventStatus = "Confirmed"
	EventCompleted EventStatus = "Completed"
	EventCancelled EventStatus = "Cancelled"
)

type VenueCostType string

const (
	CostFree   VenueCostType = "free"
	CostRented VenueCostType = "rented"
	CostInKind VenueCostType = "in_kind"
)

// ValidVenueCostTypes is the canonical set of accepted venue cost types.
var ValidVenueCostTypes = map[VenueCostType]bool{
	CostFree: true, CostRented: true, CostInKind: true,
}

type VenueCostPeriod string

const (
	PeriodPerDay   VenueCostPeriod = "per_day"
	PeriodPerHour  VenueCostPeriod = "per_hour"
	PeriodFlatRate VenueCostPeriod = "flat_rate"
)

// ValidVenueCostPeriods is the canonical set of accepted venue cost periods.
var ValidVenueCostPeriods = map[VenueCostPeriod]bool{
	PeriodPerDay: true, PeriodPerHour: true, PeriodFlatRate: true,
}

type AssociationType string

const (
	AssociationEvent   AssociationType = "event"
	AssociationProject AssociationType = "project"
	AssociationGeneral AssociationType = "general"
)

// ValidAssociationTypes is the canonical set of accepted sale session associations.
var ValidAssociationTypes = map[AssociationType]bool{
	AssociationEvent: true, AssociationProject: true, AssociationGeneral: true,
}

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)
