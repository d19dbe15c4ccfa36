package model

import "time"

// Booking statuses. The status set is closed: unknown values are rejected at
// the API boundary. Transitions are not restricted in direction, so an admin
// can move a booking back from confirmed to pending.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is one reservation event. PackageID is the legacy single-package
// field; for multi-package bookings it mirrors the first item. A booking whose
// status is not "cancelled" holds its slot.
type Booking struct {
	ID              int64     `json:"id"`
	CustomerID      int64     `json:"customer_id"`
	PackageID       *int64    `json:"package_id"`
	AvailableSlotID *int64    `json:"available_slot_id"`
	ScheduledDate   time.Time `json:"scheduled_date"`
	Status          string    `json:"status"`
	Location        *string   `json:"location"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BookingItem is one package line within a multi-package booking. Items are
// immutable after creation.
type BookingItem struct {
	ID        int64 `json:"id"`
	BookingID int64 `json:"booking_id"`
	PackageID int64 `json:"package_id"`
	Quantity  int   `json:"quantity"`
}

// CreateBookingRequest is the payload for a single-package booking.
type CreateBookingRequest struct {
	CustomerID      int64     `json:"customer_id"`
	PackageID       int64     `json:"package_id"`
	AvailableSlotID *int64    `json:"available_slot_id"`
	ScheduledDate   time.Time `json:"scheduled_date"`
	Location        *string   `json:"location"`
	Notes           *string   `json:"notes"`
}

// CreateBookingMultiRequest is the payload for a cart checkout booking with
// one or more packages. Duplicate package ids produce duplicate item rows.
type CreateBookingMultiRequest struct {
	CustomerID      int64     `json:"customer_id"`
	PackageIDs      []int64   `json:"package_ids"`
	AvailableSlotID *int64    `json:"available_slot_id"`
	ScheduledDate   time.Time `json:"scheduled_date"`
	Location        *string   `json:"location"`
	Notes           *string   `json:"notes"`
}

// UpdateBookingRequest replaces every mutable field of a booking.
type UpdateBookingRequest struct {
	CustomerID      int64     `json:"customer_id"`
	PackageID       *int64    `json:"package_id"`
	AvailableSlotID *int64    `json:"available_slot_id"`
	ScheduledDate   time.Time `json:"scheduled_date"`
	Status          string    `json:"status"`
	Location        *string   `json:"location"`
	Notes           *string   `json:"notes"`
}

// BookingPackageInfo is the subset of package fields shown on the admin
// dashboard and in notifications.
type BookingPackageInfo struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
}

// BookingItemDetail is a booking item with its package resolved.
type BookingItemDetail struct {
	ID        int64               `json:"id"`
	PackageID int64               `json:"package_id"`
	Quantity  int                 `json:"quantity"`
	Package   *BookingPackageInfo `json:"package"`
}

// BookingCustomerInfo is the subset of customer fields attached to a detailed
// booking.
type BookingCustomerInfo struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

// BookingWithDetails is a booking with customer, legacy package, and items
// resolved, for the owner dashboard and the notification dispatcher.
type BookingWithDetails struct {
	Booking
	Customer *BookingCustomerInfo `json:"customer"`
	Package  *BookingPackageInfo  `json:"package"`
	Items    []BookingItemDetail  `json:"booking_items"`
}
