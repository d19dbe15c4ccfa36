package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam23121/car-detailing/internal/model"
)

type fakeSlotStore struct {
	from, to     time.Time
	includeTaken bool
	created      *model.SlotRequest
	slots        []model.AvailableSlot
}

func (f *fakeSlotStore) Create(ctx context.Context, req model.SlotRequest) (*model.AvailableSlot, error) {
	f.created = &req
	return &model.AvailableSlot{ID: 1, SlotStart: req.SlotStart, SlotEnd: req.SlotEnd}, nil
}

func (f *fakeSlotStore) ListWindow(ctx context.Context, from, to time.Time, includeTaken bool) ([]model.AvailableSlot, error) {
	f.from, f.to, f.includeTaken = from, to, includeTaken
	return f.slots, nil
}

func (f *fakeSlotStore) Delete(ctx context.Context, id int64) error {
	return nil
}

func newAvailabilityFixture() (*AvailabilityService, *fakeSlotStore, time.Time) {
	store := &fakeSlotStore{}
	svc := NewAvailabilityService(store)
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, store, now
}

func TestListSlotsDefaultWindow(t *testing.T) {
	svc, store, now := newAvailabilityFixture()

	_, err := svc.ListSlots(context.Background(), nil, nil, false)
	require.NoError(t, err)
	assert.Equal(t, now, store.from)
	assert.Equal(t, now.Add(30*24*time.Hour), store.to)
	assert.False(t, store.includeTaken)
}

func TestListSlotsExplicitBounds(t *testing.T) {
	svc, store, _ := newAvailabilityFixture()

	from := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.April, 8, 0, 0, 0, 0, time.UTC)
	_, err := svc.ListSlots(context.Background(), &from, &to, false)
	require.NoError(t, err)
	assert.Equal(t, from, store.from)
	assert.Equal(t, to, store.to)
}

func TestListSlotsAdminSeesTaken(t *testing.T) {
	svc, store, _ := newAvailabilityFixture()

	_, err := svc.ListSlots(context.Background(), nil, nil, true)
	require.NoError(t, err)
	assert.True(t, store.includeTaken)
}

func TestCreateSlot(t *testing.T) {
	svc, store, _ := newAvailabilityFixture()

	start := time.Date(2026, time.March, 7, 14, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	slot, err := svc.CreateSlot(context.Background(), model.SlotRequest{SlotStart: start, SlotEnd: &end})
	require.NoError(t, err)
	assert.Equal(t, int64(1), slot.ID)
	require.NotNil(t, store.created)
}

func TestCreateSlotMissingStart(t *testing.T) {
	svc, store, _ := newAvailabilityFixture()

	_, err := svc.CreateSlot(context.Background(), model.SlotRequest{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Nil(t, store.created)
}

func TestCreateSlotEndBeforeStart(t *testing.T) {
	svc, _, _ := newAvailabilityFixture()

	start := time.Date(2026, time.March, 7, 14, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err := svc.CreateSlot(context.Background(), model.SlotRequest{SlotStart: start, SlotEnd: &end})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
