package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sam23121/car-detailing/internal/model"
	"github.com/sam23121/car-detailing/internal/service"
)

// ContentHandler exposes contact messages, blog posts, business info, and
// FAQs.
type ContentHandler struct {
	svc *service.ContentService
}

// NewContentHandler constructs a ContentHandler.
func NewContentHandler(svc *service.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// ── Contact ──

// CreateContactMessage handles POST /api/contact/.
func (h *ContentHandler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var req model.ContactMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	msg, err := h.svc.CreateContactMessage(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// ListContactMessages handles GET /api/contact/.
func (h *ContentHandler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	messages, err := h.svc.ListContactMessages(r.Context(), offset, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if messages == nil {
		messages = []model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// GetContactMessage handles GET /api/contact/{id}.
func (h *ContentHandler) GetContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	msg, err := h.svc.GetContactMessage(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// DeleteContactMessage handles DELETE /api/contact/{id}.
func (h *ContentHandler) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.DeleteContactMessage(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "message deleted"})
}

// ── Blog ──

// CreateBlogPost handles POST /api/blog/.
func (h *ContentHandler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req model.BlogPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	post, err := h.svc.CreateBlogPost(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// ListBlogPosts handles GET /api/blog/?published_only=true.
func (h *ContentHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	publishedOnly := r.URL.Query().Get("published_only") != "false"
	posts, err := h.svc.ListBlogPosts(r.Context(), offset, limit, publishedOnly)
	if err != nil {
		respondError(w, err)
		return
	}
	if posts == nil {
		posts = []model.BlogPost{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// GetBlogPost handles GET /api/blog/{id}.
func (h *ContentHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	post, err := h.svc.GetBlogPost(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// GetBlogPostBySlug handles GET /api/blog/slug/{slug}.
func (h *ContentHandler) GetBlogPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, err := h.svc.GetBlogPostBySlug(r.Context(), slug)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// UpdateBlogPost handles PUT /api/blog/{id}.
func (h *ContentHandler) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req model.BlogPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	post, err := h.svc.UpdateBlogPost(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// DeleteBlogPost handles DELETE /api/blog/{id}.
func (h *ContentHandler) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.DeleteBlogPost(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "blog post deleted"})
}

// ── Business info ──

// CreateBusinessInfo handles POST /api/business/info.
func (h *ContentHandler) CreateBusinessInfo(w http.ResponseWriter, r *http.Request) {
	var req model.BusinessInfoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	info, err := h.svc.CreateBusinessInfo(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, info)
}

// GetBusinessInfo handles GET /api/business/info.
func (h *ContentHandler) GetBusinessInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.GetBusinessInfo(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// UpdateBusinessInfo handles PUT /api/business/info/{id}.
func (h *ContentHandler) UpdateBusinessInfo(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req model.BusinessInfoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	info, err := h.svc.UpdateBusinessInfo(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// ── FAQ ──

// CreateFAQ handles POST /api/business/faq.
func (h *ContentHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req model.FAQRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	faq, err := h.svc.CreateFAQ(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, faq)
}

// ListFAQs handles GET /api/business/faq.
func (h *ContentHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	faqs, err := h.svc.ListFAQs(r.Context(), offset, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if faqs == nil {
		faqs = []model.FAQ{}
	}
	writeJSON(w, http.StatusOK, faqs)
}

// GetFAQ handles GET /api/business/faq/{id}.
func (h *ContentHandler) GetFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	faq, err := h.svc.GetFAQ(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, faq)
}

// UpdateFAQ handles PUT /api/business/faq/{id}.
func (h *ContentHandler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req model.FAQRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	faq, err := h.svc.UpdateFAQ(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, faq)
}

// DeleteFAQ handles DELETE /api/business/faq/{id}.
func (h *ContentHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.DeleteFAQ(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "faq deleted"})
}
