package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/service"
)

type stubSlotStore struct {
	includeTaken bool
	from, to     time.Time
	slots        []model.AvailableSlot
}

func (s *stubSlotStore) Create(ctx context.Context, req model.SlotRequest) (*model.AvailableSlot, error) {
	return &model.AvailableSlot{ID: 1, SlotStart: req.SlotStart, SlotEnd: req.SlotEnd}, nil
}

func (s *stubSlotStore) ListWindow(ctx context.Context, from, to time.Time, includeTaken bool) ([]model.AvailableSlot, error) {
	s.from, s.to, s.includeTaken = from, to, includeTaken
	return s.slots, nil
}

func (s *stubSlotStore) Delete(ctx context.Context, id int64) error {
	return nil
}

func newAvailabilityRouter(store *stubSlotStore, secret string) http.Handler {
	gate := NewAdminGate(secret)
	h := NewAvailabilityHandler(service.NewAvailabilityService(store), gate)

	r := chi.NewRouter()
	r.Route("/api/availability", func(r chi.Router) {
		r.Get("/", h.List)
		r.With(gate.Require).Post("/", h.Create)
		r.With(gate.Require).Delete("/{id}", h.Delete)
	})
	return r
}

func TestListSlotsEndpoint(t *testing.T) {
	store := &stubSlotStore{}
	router := newAvailabilityRouter(store, "hunter2")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/availability/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, store.includeTaken, "public callers must not see taken slots")
	assert.JSONEq(t, "[]", rec.Body.String(), "empty result is a JSON array, not null")
}

func TestListSlotsEndpointAdminHeader(t *testing.T) {
	store := &stubSlotStore{}
	router := newAvailabilityRouter(store, "hunter2")

	req := httptest.NewRequest(http.MethodGet, "/api/availability/", nil)
	req.Header.Set("X-Admin-Secret", "hunter2")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, store.includeTaken)
}

func TestListSlotsEndpointBounds(t *testing.T) {
	store := &stubSlotStore{}
	router := newAvailabilityRouter(store, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/availability/?from=2026-04-01T00:00:00Z&to=2026-04-08T00:00:00Z", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), store.from)
	assert.Equal(t, time.Date(2026, time.April, 8, 0, 0, 0, 0, time.UTC), store.to)
}

func TestListSlotsEndpointBadBound(t *testing.T) {
	router := newAvailabilityRouter(&stubSlotStore{}, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/availability/?from=yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSlotEndpointRequiresAdmin(t *testing.T) {
	router := newAvailabilityRouter(&stubSlotStore{}, "hunter2")

	rec := doJSON(t, router, http.MethodPost, "/api/availability/",
		`{"slot_start":"2026-03-07T14:00:00Z"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/availability/",
		strings.NewReader(`{"slot_start":"2026-03-07T14:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Secret", "hunter2")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var slot model.AvailableSlot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slot))
	assert.Equal(t, time.Date(2026, time.March, 7, 14, 0, 0, 0, time.UTC), slot.SlotStart)
}
