// Package model defines the core domain types for the detailing booking system.
package model

import "time"

// Customer is a person who books services or leaves reviews. Customers are
// created lazily on first booking/review and looked up by email, which is
// unique.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerRequest is the payload for creating or replacing a customer.
type CustomerRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}
