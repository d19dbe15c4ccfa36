package handler

import (
	"net/http"
	"strconv"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/service"
)

// ReviewHandler exposes customer reviews.
type ReviewHandler struct {
	svc *service.ReviewService
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// Create handles POST /api/reviews/. Public reviews are always unverified.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	review, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// List handles GET /api/reviews/.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	reviews, err := h.svc.List(r.Context(), offset, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

// ListVerified handles GET /api/reviews/verified?limit=10.
func (h *ReviewHandler) ListVerified(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	reviews, err := h.svc.ListVerified(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

// ListByService handles GET /api/reviews/service/{id}.
func (h *ReviewHandler) ListByService(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	reviews, err := h.svc.ListByService(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

// Get handles GET /api/reviews/{id}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	review, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// Update handles PUT /api/reviews/{id} (admin) — the only path that can set
// the verified flag.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req model.UpdateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	review, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// Delete handles DELETE /api/reviews/{id}.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	review, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}
