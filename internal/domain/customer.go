package domain

import "time"

// Customer represents a buyer tracked for orders and bookkeeping.
type Customer struct {
	ID            string
	Name          string
	ContactNumber string
	Email         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
