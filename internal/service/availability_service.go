package service

import (
	"context"
	"time"

	"github.com/sam23121/car-detailing/internal/model"
)

// defaultWindow is how far ahead the public slot listing looks when no upper
// bound is given.
const defaultWindow = 30 * 24 * time.Hour

// SlotStore is the persistence surface the availability engine needs.
// *repository.SlotRepository satisfies it.
type SlotStore interface {
	Create(ctx context.Context, req model.SlotRequest) (*model.AvailableSlot, error)
	ListWindow(ctx context.Context, from, to time.Time, includeTaken bool) ([]model.AvailableSlot, error)
	Delete(ctx context.Context, id int64) error
}

// AvailabilityService computes the public list of bookable slots and manages
// the slot calendar for the admin.
type AvailabilityService struct {
	slots SlotStore
	now   func() time.Time
}

// NewAvailabilityService constructs an AvailabilityService.
func NewAvailabilityService(slots SlotStore) *AvailabilityService {
	return &AvailabilityService{slots: slots, now: time.Now}
}

// ListSlots returns slots in [from, to] ordered by slot_start ascending.
// Nil bounds default to [now, now+30d]. Non-admin callers never see a slot
// held by an active booking; a cancelled booking releases its slot with no
// explicit release step. Admins see taken slots too, to manage the calendar.
func (s *AvailabilityService) ListSlots(ctx context.Context, from, to *time.Time, isAdmin bool) ([]model.AvailableSlot, error) {
	now := s.now().UTC()
	start := now
	if from != nil {
		start = *from
	}
	end := now.Add(defaultWindow)
	if to != nil {
		end = *to
	}
	return s.slots.ListWindow(ctx, start, end, isAdmin)
}

// CreateSlot validates and stores a new admin-defined slot.
func (s *AvailabilityService) CreateSlot(ctx context.Context, req model.SlotRequest) (*model.AvailableSlot, error) {
	if req.SlotStart.IsZero() {
		return nil, invalidf("slot_start is required")
	}
	if req.SlotEnd != nil && !req.SlotEnd.After(req.SlotStart) {
		return nil, invalidf("slot_end must be after slot_start")
	}
	return s.slots.Create(ctx, req)
}

// DeleteSlot removes a slot by id.
func (s *AvailabilityService) DeleteSlot(ctx context.Context, id int64) error {
	return s.slots.Delete(ctx, id)
}
