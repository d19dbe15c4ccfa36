// Package repository implements all database queries for the detailing
// booking system. It uses pgx directly (no ORM) for transparency and
// performance.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrSlotTaken is returned when a booking tries to reserve a slot already
// held by another active booking.
var ErrSlotTaken = errors.New("slot is already booked")

// slotConstraint is the partial unique index guarding one active booking per
// slot.
const slotConstraint = "uniq_active_booking_per_slot"

// isSlotConflict reports whether err is a unique violation on the
// active-booking-per-slot index.
func isSlotConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == slotConstraint
	}
	return false
}
