package handler

import (
	"net/http"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/service"
)

// CustomerHandler exposes customer records.
type CustomerHandler struct {
	svc *service.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// Create handles POST /api/customers/. Creating with an email that already
// exists returns the existing customer instead of a duplicate.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	customer, err := h.svc.CreateOrGet(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

// List handles GET /api/customers/.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	customers, err := h.svc.List(r.Context(), offset, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

// Get handles GET /api/customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// Update handles PUT /api/customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req model.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	customer, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}
