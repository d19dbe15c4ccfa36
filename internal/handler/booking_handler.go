package handler

import (
	"net/http"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/service"
)

// BookingHandler exposes booking creation and management.
type BookingHandler struct {
	svc *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Create handles POST /api/bookings/ — single-package booking.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	booking, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// CreateMulti handles POST /api/bookings/multi — cart checkout with one or
// more packages.
func (h *BookingHandler) CreateMulti(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookingMultiRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	booking, err := h.svc.CreateMulti(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// ListWithDetails handles GET /api/bookings/with-details (admin) — dashboard
// listing with customer, package, and item detail.
func (h *BookingHandler) ListWithDetails(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	bookings, err := h.svc.ListWithDetails(r.Context(), offset, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if bookings == nil {
		bookings = []model.BookingWithDetails{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

// Get handles GET /api/bookings/{id}.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	booking, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// ListByCustomer handles GET /api/bookings/customer/{id}.
func (h *BookingHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	bookings, err := h.svc.ListByCustomer(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

// Update handles PUT /api/bookings/{id} — full-record replace.
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req model.UpdateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	booking, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// Delete handles DELETE /api/bookings/{id} (admin). Booking items cascade.
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	booking, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
