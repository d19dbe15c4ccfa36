package handler

import (
	"net/http"
	"time"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/service"
)

// AvailabilityHandler exposes the slot calendar. Listing is public but
// admin-aware: a request carrying a valid admin secret also sees taken slots.
type AvailabilityHandler struct {
	svc  *service.AvailabilityService
	gate *AdminGate
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc *service.AvailabilityService, gate *AdminGate) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc, gate: gate}
}

// List handles GET /api/availability?from=...&to=...
// Bounds are RFC 3339; both default to the next 30 days from now.
func (h *AvailabilityHandler) List(w http.ResponseWriter, r *http.Request) {
	var from, to *time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from: use RFC 3339")
			return
		}
		from = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to: use RFC 3339")
			return
		}
		to = &t
	}

	slots, err := h.svc.ListSlots(r.Context(), from, to, h.gate.Authorized(r))
	if err != nil {
		respondError(w, err)
		return
	}
	if slots == nil {
		slots = []model.AvailableSlot{}
	}
	writeJSON(w, http.StatusOK, slots)
}

// Create handles POST /api/availability (admin).
func (h *AvailabilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.SlotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	slot, err := h.svc.CreateSlot(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}

// Delete handles DELETE /api/availability/{id} (admin).
func (h *AvailabilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.DeleteSlot(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "slot deleted"})
}
