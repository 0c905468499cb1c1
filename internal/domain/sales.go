package domain

import "time"

// SaleSession is a sales context tied to a project, an event, or nothing.
type SaleSession struct {
	ID              string
	Name            string
	AssociationType AssociationType
	ProjectID       *string
	EventID         *string
	ExpectedRevenue *float64
}

// SalesTransaction records realized receipts for a sale session.
type SalesTransaction struct {
	ID            string
	SaleSessionID string
	Total         float64
	CreatedAt     time.Time
}
