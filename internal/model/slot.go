package model

import "time"

// AvailableSlot is an admin-defined bookable time window. SlotEnd is optional;
// a nil SlotEnd means a point-in-time slot rather than a range.
//
// Whether a slot is taken is derived, never stored: a slot is taken iff some
// non-cancelled booking references it.
type AvailableSlot struct {
	ID        int64      `json:"id"`
	SlotStart time.Time  `json:"slot_start"`
	SlotEnd   *time.Time `json:"slot_end"`
	CreatedAt time.Time  `json:"created_at"`
}

// SlotRequest is the payload for creating a slot.
type SlotRequest struct {
	SlotStart time.Time  `json:"slot_start"`
	SlotEnd   *time.Time `json:"slot_end"`
}
