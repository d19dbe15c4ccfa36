package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/repository"
)

type fakeBookingStore struct {
	created      *model.CreateBookingRequest
	createdMulti *model.CreateBookingMultiRequest
	updated      *model.UpdateBookingRequest
	createErr    error
	updateErr    error
	nextID       int64
}

func (f *fakeBookingStore) Create(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &req
	return &model.Booking{ID: f.nextID, CustomerID: req.CustomerID, Status: model.StatusPending}, nil
}

func (f *fakeBookingStore) CreateMulti(ctx context.Context, req model.CreateBookingMultiRequest) (*model.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdMulti = &req
	first := req.PackageIDs[0]
	return &model.Booking{ID: f.nextID, CustomerID: req.CustomerID, PackageID: &first, Status: model.StatusPending}, nil
}

func (f *fakeBookingStore) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeBookingStore) GetWithDetails(ctx context.Context, id int64) (*model.BookingWithDetails, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeBookingStore) ListByCustomer(ctx context.Context, customerID int64) ([]model.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) ListWithDetails(ctx context.Context, offset, limit int) ([]model.BookingWithDetails, error) {
	return nil, nil
}

func (f *fakeBookingStore) Update(ctx context.Context, id int64, req model.UpdateBookingRequest) (*model.Booking, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = &req
	return &model.Booking{ID: id, Status: req.Status}, nil
}

func (f *fakeBookingStore) Delete(ctx context.Context, id int64) (*model.Booking, error) {
	return &model.Booking{ID: id}, nil
}

type fakeCustomerGetter struct {
	known map[int64]bool
}

func (f *fakeCustomerGetter) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if f.known[id] {
		return &model.Customer{ID: id}, nil
	}
	return nil, repository.ErrNotFound
}

type fakePackageGetter struct {
	known map[int64]bool
}

func (f *fakePackageGetter) GetPackage(ctx context.Context, id int64) (*model.Package, error) {
	if f.known[id] {
		return &model.Package{ID: id}, nil
	}
	return nil, repository.ErrNotFound
}

type fakeNotifier struct {
	dispatched []int64
}

func (f *fakeNotifier) Dispatch(ctx context.Context, bookingID int64) {
	f.dispatched = append(f.dispatched, bookingID)
}

func newBookingFixture() (*BookingService, *fakeBookingStore, *fakeNotifier) {
	store := &fakeBookingStore{nextID: 42}
	notifier := &fakeNotifier{}
	svc := NewBookingService(store,
		&fakeCustomerGetter{known: map[int64]bool{1: true}},
		&fakePackageGetter{known: map[int64]bool{3: true, 5: true}},
		notifier,
	)
	return svc, store, notifier
}

func scheduled() time.Time {
	return time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC)
}

func TestCreateBooking(t *testing.T) {
	svc, store, notifier := newBookingFixture()

	booking, err := svc.Create(context.Background(), model.CreateBookingRequest{
		CustomerID:    1,
		PackageID:     3,
		ScheduledDate: scheduled(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, model.StatusPending, booking.Status)
	require.NotNil(t, store.created)
	assert.Equal(t, []int64{42}, notifier.dispatched)
}

func TestCreateBookingUnknownCustomer(t *testing.T) {
	svc, store, notifier := newBookingFixture()

	_, err := svc.Create(context.Background(), model.CreateBookingRequest{
		CustomerID:    99,
		PackageID:     3,
		ScheduledDate: scheduled(),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, store.created)
	assert.Empty(t, notifier.dispatched)
}

func TestCreateBookingUnknownPackage(t *testing.T) {
	svc, _, _ := newBookingFixture()

	_, err := svc.Create(context.Background(), model.CreateBookingRequest{
		CustomerID:    1,
		PackageID:     99,
		ScheduledDate: scheduled(),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateBookingMulti(t *testing.T) {
	svc, store, notifier := newBookingFixture()

	booking, err := svc.CreateMulti(context.Background(), model.CreateBookingMultiRequest{
		CustomerID:    1,
		PackageIDs:    []int64{3, 3, 5},
		ScheduledDate: scheduled(),
	})
	require.NoError(t, err)
	require.NotNil(t, booking.PackageID)
	assert.Equal(t, int64(3), *booking.PackageID)
	require.NotNil(t, store.createdMulti)
	// Duplicates pass through untouched; the store writes one item per id.
	assert.Equal(t, []int64{3, 3, 5}, store.createdMulti.PackageIDs)
	assert.Equal(t, []int64{42}, notifier.dispatched)
}

func TestCreateBookingMultiEmptyPackages(t *testing.T) {
	svc, store, notifier := newBookingFixture()

	_, err := svc.CreateMulti(context.Background(), model.CreateBookingMultiRequest{
		CustomerID:    1,
		PackageIDs:    nil,
		ScheduledDate: scheduled(),
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Nil(t, store.createdMulti)
	assert.Empty(t, notifier.dispatched)
}

func TestCreateBookingSlotTaken(t *testing.T) {
	svc, store, notifier := newBookingFixture()
	store.createErr = repository.ErrSlotTaken

	_, err := svc.Create(context.Background(), model.CreateBookingRequest{
		CustomerID:    1,
		PackageID:     3,
		ScheduledDate: scheduled(),
	})
	assert.ErrorIs(t, err, repository.ErrSlotTaken)
	assert.Empty(t, notifier.dispatched)
}

func TestUpdateBookingRejectsUnknownStatus(t *testing.T) {
	svc, store, _ := newBookingFixture()

	_, err := svc.Update(context.Background(), 42, model.UpdateBookingRequest{
		CustomerID:    1,
		ScheduledDate: scheduled(),
		Status:        "sideways",
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Nil(t, store.updated)
}

func TestUpdateBookingAllowsKnownStatuses(t *testing.T) {
	svc, _, _ := newBookingFixture()

	for _, status := range []string{
		model.StatusPending, model.StatusConfirmed, model.StatusCompleted, model.StatusCancelled,
	} {
		booking, err := svc.Update(context.Background(), 42, model.UpdateBookingRequest{
			CustomerID:    1,
			ScheduledDate: scheduled(),
			Status:        status,
		})
		require.NoError(t, err, "status %q", status)
		assert.Equal(t, status, booking.Status)
	}
}
