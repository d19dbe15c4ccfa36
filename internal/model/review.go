package model

import "time"

// Review is a customer-authored rating and comment, optionally tied to a
// service. Verified is set only through admin edits, never by the public
// create path.
type Review struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ServiceID  *int64    `json:"service_id"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReviewRequest is the public payload for leaving a review.
type CreateReviewRequest struct {
	CustomerID int64  `json:"customer_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	ServiceID  *int64 `json:"service_id"`
}

// UpdateReviewRequest replaces a review; only this admin path may flip
// Verified.
type UpdateReviewRequest struct {
	CustomerID int64  `json:"customer_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	ServiceID  *int64 `json:"service_id"`
	Verified   bool   `json:"verified"`
}
