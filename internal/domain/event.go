package domain

import "time"

// VenueCost describes how a venue is paid for.
type VenueCost struct {
	CostType VenueCostType   `json:"costType"`
	Cost     float64         `json:"cost"`
	Period   VenueCostPeriod `json:"period"`
}

type Venue struct {
	ID                string
	Name              string
	Capacity          int
	DefaultCostType   VenueCostType
	DefaultCost       float64
	DefaultCostPeriod VenueCostPeriod
}

// DefaultCostDetails returns the venue's standing cost terms.
func (v *Venue) DefaultCostDetails() VenueCost {
	return VenueCost{CostType: v.DefaultCostType, Cost: v.DefaultCost, Period: v.DefaultCostPeriod}
}

// Event may belong to a project and a venue. StartTime and EndTime are
// wall-clock "HH:MM" strings and are ignored for all-day events.
type Event struct {
	ID                string
	ProjectID         *string
	VenueID           *string
	Title             string
	Status            EventStatus
	Category          string
	StartDate         time.Time
	EndDate           time.Time
	StartTime         string
	EndTime           string
	IsAllDay          bool
	IsTemplate        bool
	VenueCostOverride *VenueCost
}

// BelongsTo reports whether the event is tied to the given project.
func (e *Event) BelongsTo(projectID string) bool {
	return e.ProjectID != nil && *e.ProjectID == projectID
}

// EventTicket offers a ticket type for one event at a price. Capacity is
// the number of units available for sale.
type EventTicket struct {
	ID             string
	EventID        string
	TicketTypeID   string
	TicketTypeName string
	Price          float64
	Capacity       int
	SoldCount      int
}
