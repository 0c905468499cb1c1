package budget

import (
	"time"

	"github.com/artscollective/grantbook/internal/domain"
)

// allDayHours is the billable length of an all-day event.
const allDayHours = 8

// EventVenueCost is the projected venue cost of one event.
type EventVenueCost struct {
	EventID  string                 `json:"eventId"`
	Title    string                 `json:"title"`
	CostType domain.VenueCostType   `json:"costType"`
	Period   domain.VenueCostPeriod `json:"period"`
	Days     int                    `json:"days"`
	Hours    float64                `json:"hours"`
	Amount   float64                `json:"amount"`
}

// VenueCostProjection splits projected venue costs into cash rentals and
// in-kind donated space. Only Cash reduces the projected balance.
type VenueCostProjection struct {
	Cash   float64          `json:"cash"`
	InKind float64          `json:"inKind"`
	Events []EventVenueCost `json:"events"`
}

// ProjectVenueCosts projects venue costs for every non-template,
// non-cancelled event of the project. An event's override wins over its
// venue's defaults; events with neither, or with free space, cost nothing.
func ProjectVenueCosts(projectID string, events []domain.Event, venues []domain.Venue) VenueCostProjection {
	venueByID := make(map[string]domain.Venue, len(venues))
	for _, v := range venues {
		venueByID[v.ID] = v
	}

	proj := VenueCostProjection{Events: []EventVenueCost{}}
	for _, e := range events {
		if !e.BelongsTo(projectID) || e.IsTemplate || e.Status == domain.EventCancelled {
			continue
		}

		details, ok := effectiveVenueCost(e, venueByID)
		if !ok || details.CostType == domain.CostFree {
			continue
		}

		line := EventVenueCost{
			EventID:  e.ID,
			Title:    e.Title,
			CostType: details.CostType,
			Period:   details.Period,
			Days:     daySpan(e.StartDate, e.EndDate),
		}

		switch details.Period {
		case domain.PeriodFlatRate:
			line.Amount = details.Cost
		case domain.PeriodPerDay:
			line.Amount = details.Cost * float64(line.Days)
		case domain.PeriodPerHour:
			line.Hours = hoursPerDay(e)
			line.Amount = details.Cost * line.Hours * float64(line.Days)
		default:
			continue
		}

		switch details.CostType {
		case domain.CostRented:
			proj.Cash += line.Amount
		case domain.CostInKind:
			proj.InKind += line.Amount
		default:
			continue
		}
		proj.Events = append(proj.Events, line)
	}
	return proj
}

func effectiveVenueCost(e domain.Event, venueByID map[string]domain.Venue) (domain.VenueCost, bool) {
	if e.VenueCostOverride != nil {
		return *e.VenueCostOverride, true
	}
	if e.VenueID == nil {
		return domain.VenueCost{}, false
	}
	v, ok := venueByID[*e.VenueID]
	if !ok {
		return domain.VenueCost{}, false
	}
	return v.DefaultCostDetails(), true
}

// daySpan counts calendar days from start to end inclusive. A missing or
// earlier end date is a single day.
func daySpan(start, end time.Time) int {
	if end.IsZero() {
		return 1
	}
	s := calendarDate(start)
	en := calendarDate(end)
	if en.Before(s) {
		return 1
	}
	return int(en.Sub(s).Hours()/24) + 1
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// hoursPerDay is the billable hours of one day of the event.
func hoursPerDay(e domain.Event) float64 {
	if e.IsAllDay {
		return allDayHours
	}
	start, err := time.Parse("15:04", e.StartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", e.EndTime)
	if err != nil {
		return 0
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Hours()
}
