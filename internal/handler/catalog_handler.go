package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/service"
)

// CatalogHandler exposes the service/package catalog.
type CatalogHandler struct {
	svc *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// CreateService handles POST /api/services/.
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req model.ServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	svc, err := h.svc.CreateService(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// ListServices handles GET /api/services/.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	services, err := h.svc.ListServices(r.Context(), offset, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if services == nil {
		services = []model.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// GetService handles GET /api/services/{id}.
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	svc, err := h.svc.GetService(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// GetServiceBySlug handles GET /api/services/slug/{slug}.
func (h *CatalogHandler) GetServiceBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	svc, err := h.svc.GetServiceBySlug(r.Context(), slug)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// UpdateService handles PUT /api/services/{id}.
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req model.ServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	svc, err := h.svc.UpdateService(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// DeleteService handles DELETE /api/services/{id}.
func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	svc, err := h.svc.DeleteService(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// ListServicePackages handles GET /api/services/{id}/packages.
func (h *CatalogHandler) ListServicePackages(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	packages, err := h.svc.ListServicePackages(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if packages == nil {
		packages = []model.Package{}
	}
	writeJSON(w, http.StatusOK, packages)
}

// CreatePackage handles POST /api/services/{id}/packages.
func (h *CatalogHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req model.PackageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.ServiceID = id
	pkg, err := h.svc.CreatePackage(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pkg)
}

// GetPackage handles GET /api/packages/{id} — package with service name and
// slug for the detail page.
func (h *CatalogHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pkg, err := h.svc.GetPackage(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}
