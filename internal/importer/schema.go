package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure of a project file.
type ImportSchema struct {
	Project           ProjectImport       `json:"project"`
	Budget            BudgetImport        `json:"budget"`
	Venues            []VenueImport       `json:"venues,omitempty"`
	Events            []EventImport       `json:"events,omitempty"`
	EventTickets      []TicketImport      `json:"event_tickets,omitempty"`
	Tasks             []TaskImport        `json:"tasks,omitempty"`
	Activities        []ActivityImport    `json:"activities,omitempty"`
	DirectExpenses    []ExpenseImport     `json:"direct_expenses,omitempty"`
	SaleSessions      []SaleSessionImport `json:"sale_sessions,omitempty"`
	SalesTransactions []TransactionImport `json:"sales_transactions,omitempty"`
}

type ProjectImport struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

type BudgetImport struct {
	Revenues RevenuesImport `json:"revenues"`
	Expenses ExpensesImport `json:"expenses"`
}

type RevenuesImport struct {
	Grants        []ItemImport  `json:"grants,omitempty"`
	Tickets       TicketsImport `json:"tickets"`
	Sales         []ItemImport  `json:"sales,omitempty"`
	Fundraising   []ItemImport  `json:"fundraising,omitempty"`
	Contributions []ItemImport  `json:"contributions,omitempty"`
}

type TicketsImport struct {
	ActualRevenue *float64 `json:"actual_revenue,omitempty"`
}

type ExpensesImport struct {
	ProfessionalFees        []ItemImport `json:"professional_fees,omitempty"`
	Travel                  []ItemImport `json:"travel,omitempty"`
	Production              []ItemImport `json:"production,omitempty"`
	Administration          []ItemImport `json:"administration,omitempty"`
	Research                []ItemImport `json:"research,omitempty"`
	ProfessionalDevelopment []ItemImport `json:"professional_development,omitempty"`
}

// ItemImport is one budget line. ActualAmount and Status only apply to
// revenue lines.
type ItemImport struct {
	Ref          string   `json:"ref"`
	Source       string   `json:"source,omitempty"`
	Description  string   `json:"description,omitempty"`
	Amount       float64  `json:"amount"`
	ActualAmount *float64 `json:"actual_amount,omitempty"`
	Status       string   `json:"status,omitempty"`
}

type VenueImport struct {
	Ref        string  `json:"ref"`
	Name       string  `json:"name"`
	Capacity   int     `json:"capacity"`
	CostType   string  `json:"cost_type,omitempty"`
	Cost       float64 `json:"cost,omitempty"`
	CostPeriod string  `json:"cost_period,omitempty"`
}

type VenueCostImport struct {
	CostType string  `json:"cost_type"`
	Cost     float64 `json:"cost"`
	Period   string  `json:"period"`
}

type EventImport struct {
	Ref               string           `json:"ref"`
	VenueRef          *string          `json:"venue_ref,omitempty"`
	Title             string           `json:"title"`
	Status            string           `json:"status,omitempty"`
	Category          string           `json:"category,omitempty"`
	StartDate         string           `json:"start_date"`
	EndDate           *string          `json:"end_date,omitempty"`
	StartTime         string           `json:"start_time,omitempty"`
	EndTime           string           `json:"end_time,omitempty"`
	IsAllDay          bool             `json:"is_all_day,omitempty"`
	IsTemplate        bool             `json:"is_template,omitempty"`
	VenueCostOverride *VenueCostImport `json:"venue_cost_override,omitempty"`
}

type TicketImport struct {
	EventRef   string  `json:"event_ref"`
	TicketType string  `json:"ticket_type"`
	Price      float64 `json:"price"`
	Capacity   int     `json:"capacity"`
	SoldCount  int     `json:"sold_count,omitempty"`
}

type TaskImport struct {
	Ref            string  `json:"ref"`
	Title          string  `json:"title"`
	BudgetItemRef  *string `json:"budget_item_ref,omitempty"`
	TaskType       string  `json:"task_type,omitempty"`
	WorkType       string  `json:"work_type,omitempty"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`
	HourlyRate     float64 `json:"hourly_rate,omitempty"`
}

type ActivityImport struct {
	TaskRef  string  `json:"task_ref"`
	MemberID string  `json:"member_id,omitempty"`
	Hours    float64 `json:"hours"`
	Status   string  `json:"status,omitempty"`
	Date     string  `json:"date,omitempty"`
}

type ExpenseImport struct {
	BudgetItemRef *string `json:"budget_item_ref,omitempty"`
	Description   string  `json:"description,omitempty"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date,omitempty"`
}

type SaleSessionImport struct {
	Ref             string   `json:"ref"`
	Name            string   `json:"name"`
	AssociationType string   `json:"association_type"`
	EventRef        *string  `json:"event_ref,omitempty"`
	ExpectedRevenue *float64 `json:"expected_revenue,omitempty"`
}

type TransactionImport struct {
	SessionRef string  `json:"session_ref"`
	Total      float64 `json:"total"`
}

// LoadImportSchema reads and parses a project JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// ParseImportSchema decodes a project file already in memory.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

type namedItems struct {
	field string
	items []ItemImport
}

// revenueLines lists the item-bearing revenue categories with their JSON paths.
func (b *BudgetImport) revenueLines() []namedItems {
	return []namedItems{
		{"budget.revenues.grants", b.Revenues.Grants},
		{"budget.revenues.sales", b.Revenues.Sales},
		{"budget.revenues.fundraising", b.Revenues.Fundraising},
		{"budget.revenues.contributions", b.Revenues.Contributions},
	}
}

func (b *BudgetImport) expenseLines() []namedItems {
	return []namedItems{
		{"budget.expenses.professional_fees", b.Expenses.ProfessionalFees},
		{"budget.expenses.travel", b.Expenses.Travel},
		{"budget.expenses.production", b.Expenses.Production},
		{"budget.expenses.administration", b.Expenses.Administration},
		{"budget.expenses.research", b.Expenses.Research},
		{"budget.expenses.professional_development", b.Expenses.ProfessionalDevelopment},
	}
}
