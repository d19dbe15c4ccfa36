package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/repository"
	"github.com/sam23121/car-detailing/internal/service"
)

type stubBookingStore struct {
	bookings  map[int64]*model.Booking
	nextID    int64
	multi     *model.CreateBookingMultiRequest
	createErr error
}

func newStubBookingStore() *stubBookingStore {
	return &stubBookingStore{bookings: map[int64]*model.Booking{}, nextID: 1}
}

func (s *stubBookingStore) Create(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	b := &model.Booking{
		ID:            s.nextID,
		CustomerID:    req.CustomerID,
		PackageID:     &req.PackageID,
		ScheduledDate: req.ScheduledDate,
		Status:        model.StatusPending,
	}
	s.bookings[b.ID] = b
	s.nextID++
	return b, nil
}

func (s *stubBookingStore) CreateMulti(ctx context.Context, req model.CreateBookingMultiRequest) (*model.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.multi = &req
	first := req.PackageIDs[0]
	b := &model.Booking{
		ID:            s.nextID,
		CustomerID:    req.CustomerID,
		PackageID:     &first,
		ScheduledDate: req.ScheduledDate,
		Status:        model.StatusPending,
	}
	s.bookings[b.ID] = b
	s.nextID++
	return b, nil
}

func (s *stubBookingStore) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	if b, ok := s.bookings[id]; ok {
		return b, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubBookingStore) GetWithDetails(ctx context.Context, id int64) (*model.BookingWithDetails, error) {
	return nil, repository.ErrNotFound
}

func (s *stubBookingStore) ListByCustomer(ctx context.Context, customerID int64) ([]model.Booking, error) {
	return nil, nil
}

func (s *stubBookingStore) ListWithDetails(ctx context.Context, offset, limit int) ([]model.BookingWithDetails, error) {
	return nil, nil
}

func (s *stubBookingStore) Update(ctx context.Context, id int64, req model.UpdateBookingRequest) (*model.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	b.Status = req.Status
	b.ScheduledDate = req.ScheduledDate
	return b, nil
}

func (s *stubBookingStore) Delete(ctx context.Context, id int64) (*model.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(s.bookings, id)
	return b, nil
}

type stubCustomerGetter struct{ known map[int64]bool }

func (s *stubCustomerGetter) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.known[id] {
		return &model.Customer{ID: id}, nil
	}
	return nil, repository.ErrNotFound
}

type stubPackageGetter struct{ known map[int64]bool }

func (s *stubPackageGetter) GetPackage(ctx context.Context, id int64) (*model.Package, error) {
	if s.known[id] {
		return &model.Package{ID: id}, nil
	}
	return nil, repository.ErrNotFound
}

type noopNotifier struct{ dispatched []int64 }

func (n *noopNotifier) Dispatch(ctx context.Context, bookingID int64) {
	n.dispatched = append(n.dispatched, bookingID)
}

func newBookingRouter(store *stubBookingStore, notifier *noopNotifier) http.Handler {
	svc := service.NewBookingService(store,
		&stubCustomerGetter{known: map[int64]bool{1: true}},
		&stubPackageGetter{known: map[int64]bool{3: true, 5: true}},
		notifier,
	)
	h := NewBookingHandler(svc)

	r := chi.NewRouter()
	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Post("/multi", h.CreateMulti)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingEndpoint(t *testing.T) {
	store := newStubBookingStore()
	notifier := &noopNotifier{}
	router := newBookingRouter(store, notifier)

	rec := doJSON(t, router, http.MethodPost, "/api/bookings/",
		`{"customer_id":1,"package_id":3,"scheduled_date":"2026-03-07T14:30:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var booking model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, []int64{booking.ID}, notifier.dispatched)
}

func TestCreateBookingEndpointUnknownCustomer(t *testing.T) {
	router := newBookingRouter(newStubBookingStore(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodPost, "/api/bookings/",
		`{"customer_id":77,"package_id":3,"scheduled_date":"2026-03-07T14:30:00Z"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBookingEndpointMalformedBody(t *testing.T) {
	router := newBookingRouter(newStubBookingStore(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodPost, "/api/bookings/", `{"customer_id": "one"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingEndpointUnknownField(t *testing.T) {
	router := newBookingRouter(newStubBookingStore(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodPost, "/api/bookings/",
		`{"customer_id":1,"package_id":3,"scheduled_date":"2026-03-07T14:30:00Z","color":"red"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingEndpointSlotConflict(t *testing.T) {
	store := newStubBookingStore()
	store.createErr = repository.ErrSlotTaken
	notifier := &noopNotifier{}
	router := newBookingRouter(store, notifier)

	rec := doJSON(t, router, http.MethodPost, "/api/bookings/",
		`{"customer_id":1,"package_id":3,"scheduled_date":"2026-03-07T14:30:00Z"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, notifier.dispatched)
}

func TestCreateBookingMultiEndpoint(t *testing.T) {
	store := newStubBookingStore()
	router := newBookingRouter(store, &noopNotifier{})

	rec := doJSON(t, router, http.MethodPost, "/api/bookings/multi",
		`{"customer_id":1,"package_ids":[3,3,5],"scheduled_date":"2026-03-07T14:30:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, store.multi)
	assert.Equal(t, []int64{3, 3, 5}, store.multi.PackageIDs)
}

func TestCreateBookingMultiEndpointEmptyPackages(t *testing.T) {
	router := newBookingRouter(newStubBookingStore(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodPost, "/api/bookings/multi",
		`{"customer_id":1,"package_ids":[],"scheduled_date":"2026-03-07T14:30:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingEndpointNotFound(t *testing.T) {
	router := newBookingRouter(newStubBookingStore(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodGet, "/api/bookings/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBookingEndpointBadID(t *testing.T) {
	router := newBookingRouter(newStubBookingStore(), &noopNotifier{})

	rec := doJSON(t, router, http.MethodGet, "/api/bookings/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBookingEndpointBadStatus(t *testing.T) {
	store := newStubBookingStore()
	router := newBookingRouter(store, &noopNotifier{})

	rec := doJSON(t, router, http.MethodPost, "/api/bookings/",
		`{"customer_id":1,"package_id":3,"scheduled_date":"2026-03-07T14:30:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/bookings/1",
		`{"customer_id":1,"scheduled_date":"2026-03-07T14:30:00Z","status":"sideways"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteBookingEndpoint(t *testing.T) {
	store := newStubBookingStore()
	router := newBookingRouter(store, &noopNotifier{})

	rec := doJSON(t, router, http.MethodPost, "/api/bookings/",
		`{"customer_id":1,"package_id":3,"scheduled_date":"2026-03-07T14:30:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/bookings/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/bookings/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
