package budget

import (
	"math"
	"strings"

	"github.com/artscollective/grantbook/internal/domain"
)

// performanceCategories are the event categories that sell tickets.
var performanceCategories = map[string]bool{
	"performance":         true,
	"concert":             true,
	"theatre":             true,
	"music":               true,
	"dance":               true,
	"public presentation": true,
}

// IsPerformanceCategory reports whether an event category denotes a
// ticketed performance. Matching ignores case.
func IsPerformanceCategory(category string) bool {
	return performanceCategories[strings.ToLower(category)]
}

// TicketRevenueResult is the ticket projection for one project. It is
// frozen verbatim into proposal snapshots, hence the JSON tags.
type TicketRevenueResult struct {
	NumberOfPresentations int     `json:"numberOfPresentations"`
	AverageVenueCapacity  int     `json:"averageVenueCapacity"`
	ProjectedAudience     int     `json:"projectedAudience"`
	AveragePctSold        float64 `json:"averagePctSold"`
	ProjectedRevenue      float64 `json:"projectedRevenue"`
	AverageTicketPrice    float64 `json:"averageTicketPrice"`
}

// PlannedEvents returns the project's non-template, non-cancelled events
// whose category is a performance, in input order.
func PlannedEvents(projectID string, events []domain.Event) []domain.Event {
	var planned []domain.Event
	for _, e := range events {
		if !e.BelongsTo(projectID) || e.IsTemplate || e.Status == domain.EventCancelled {
			continue
		}
		if !IsPerformanceCategory(e.Category) {
			continue
		}
		planned = append(planned, e)
	}
	return planned
}

// ComputeTicketRevenue projects ticket revenue across a project's planned
// events. The average ticket price is weighted: revenue divided by
// audience, so audience * price reproduces revenue.
func ComputeTicketRevenue(projectID string, events []domain.Event, venues []domain.Venue, tickets []domain.EventTicket) TicketRevenueResult {
	planned := PlannedEvents(projectID, events)
	if len(planned) == 0 {
		return TicketRevenueResult{}
	}

	plannedIDs := make(map[string]bool, len(planned))
	for _, e := range planned {
		plannedIDs[e.ID] = true
	}

	var result TicketRevenueResult
	for _, t := range tickets {
		if !plannedIDs[t.EventID] {
			continue
		}
		result.ProjectedRevenue += t.Price * float64(t.Capacity)
		result.ProjectedAudience += t.Capacity
	}

	if result.ProjectedAudience > 0 {
		result.AverageTicketPrice = result.ProjectedRevenue / float64(result.ProjectedAudience)
	}

	result.NumberOfPresentations = len(planned)

	venueCapacity := make(map[string]int, len(venues))
	for _, v := range venues {
		venueCapacity[v.ID] = v.Capacity
	}

	// One accumulator serves both the average capacity and the sell-through
	// denominator. A venue hosting several planned events is counted once
	// per event (seat-nights), not once per venue.
	var totalVenueCapacity int
	for _, e := range planned {
		if e.VenueID == nil {
			continue
		}
		totalVenueCapacity += venueCapacity[*e.VenueID]
	}

	result.AverageVenueCapacity = int(math.Round(float64(totalVenueCapacity) / float64(result.NumberOfPresentations)))
	if totalVenueCapacity > 0 {
		result.AveragePctSold = float64(result.ProjectedAudience) / float64(totalVenueCapacity) * 100
	}

	return result
}
