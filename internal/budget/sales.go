package budget

import (
	"fmt"

	"github.com/artscollective/grantbook/internal/domain"
)

// SalesSessionBreakdown is the estimated and realized revenue of one sale session.
type SalesSessionBreakdown struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	EstimatedRevenue float64 `json:"estimatedRevenue"`
	ActualRevenue    float64 `json:"actualRevenue"`
}

// SalesRevenueResult is the per-session breakdown of sales scoped to a
// project, with estimated and realized totals.
type SalesRevenueResult struct {
	Sessions              []SalesSessionBreakdown `json:"sessions"`
	TotalEstimatedRevenue float64                 `json:"totalEstimatedRevenue"`
	TotalActualRevenue    float64                 `json:"totalActualRevenue"`
}

// ComputeSalesRevenue sums sale sessions scoped to the project, either
// directly or through one of its events. General sessions never count.
func ComputeSalesRevenue(projectID string, events []domain.Event, sessions []domain.SaleSession, transactions []domain.SalesTransaction) SalesRevenueResult {
	eventTitles := make(map[string]string)
	for _, e := range events {
		if e.BelongsTo(projectID) {
			eventTitles[e.ID] = e.Title
		}
	}

	receipts := make(map[string]float64)
	for _, tx := range transactions {
		receipts[tx.SaleSessionID] += tx.Total
	}

	result := SalesRevenueResult{Sessions: []SalesSessionBreakdown{}}
	for _, s := range sessions {
		name, ok := sessionLabel(s, projectID, eventTitles)
		if !ok {
			continue
		}
		entry := SalesSessionBreakdown{
			ID:               s.ID,
			Name:             name,
			EstimatedRevenue: domain.Float64FromPtrWithDefault(0, s.ExpectedRevenue),
			ActualRevenue:    receipts[s.ID],
		}
		result.Sessions = append(result.Sessions, entry)
		result.TotalEstimatedRevenue += entry.EstimatedRevenue
		result.TotalActualRevenue += entry.ActualRevenue
	}
	return result
}

// sessionLabel reports whether a session belongs to the project and, if so,
// its display name. Event sessions are suffixed with the event title.
func sessionLabel(s domain.SaleSession, projectID string, eventTitles map[string]string) (string, bool) {
	switch s.AssociationType {
	case domain.AssociationProject:
		if s.ProjectID == nil || *s.ProjectID != projectID {
			return "", false
		}
		return s.Name, true
	case domain.AssociationEvent:
		if s.EventID == nil {
			return "", false
		}
		title, ok := eventTitles[*s.EventID]
		if !ok {
			return "", false
		}
		if title == "" {
			return s.Name, true
		}
		return fmt.Sprintf("%s (%s)", s.Name, title), true
	default:
		return "", false
	}
}
