package domain

import (
	"encoding/json"
	"time"
)

// ProposalSnapshot is a frozen copy of a project's ticket metrics taken at
// creation time. Metrics holds the JSON object exactly as computed.
type ProposalSnapshot struct {
	ID        string
	ProjectID string
	Title     string
	Metrics   json.RawMessage
	CreatedAt time.Time
}
