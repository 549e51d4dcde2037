package domain

import "time"

// Order is a single student's request for one item and quantity from one
// stall. ID and OrderTime are assigned server-side; an order is immutable
// once stored.
type Order struct {
	ID          string
	StudentName string
	Stall       string
	Item        string
	Quantity    int
	OrderTime   time.Time
}
