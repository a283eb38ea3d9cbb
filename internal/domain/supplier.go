package domain

import "time"

// Supplier represents a vendor products are purchased from.
type Supplier struct {
	ID            string
	Name          string
	ContactNumber string
	Email         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
