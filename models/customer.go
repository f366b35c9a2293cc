package models

import "time"

// CustomerProfile is a derived view: one profile per shipping email,
// recomputed from the full order log on every read. It has no identity of
// its own and is never stored.
type CustomerProfile struct {
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	Country    string     `json:"country"`
	Orders     []Order    `json:"orders"`
	TotalSpent float64    `json:"total_spent"`
	FirstOrder *time.Time `json:"first_order,omitempty"`
	LastOrder  *time.Time `json:"last_order,omitempty"`
}

// CustomerListResponse wraps the customer screen payload with its headline
// numbers.
type CustomerListResponse struct {
	TotalCustomers int               `json:"total_customers"`
	TotalRevenue   float64           `json:"total_revenue"`
	Customers      []CustomerProfile `json:"customers"`
}
