// ABOUTME: Article handlers for the HTTP API
// ABOUTME: Provides CRUD endpoints over the persisted article collection

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"readstash-api/api/dto/mappers"
	"readstash-api/api/dto/requests"
	"readstash-api/api/dto/responses"
	"readstash-api/core/domain"
	coreerrors "readstash-api/core/errors"
	"readstash-api/core/interfaces"
)

// ArticleHandler handles article persistence requests
type ArticleHandler struct {
	store     interfaces.ArticleService
	extractor interfaces.Extractor
	logger    interfaces.Logger
}

// NewArticleHandler creates a new article handler. The extractor is
// optional; without it, extract requests are rejected.
func NewArticleHandler(store interfaces.ArticleService, extractor interfaces.Extractor, logger interfaces.Logger) *ArticleHandler {
	return &ArticleHandler{
		store:     store,
		extractor: extractor,
		logger:    logger,
	}
}

// RegisterRoutes registers all article-related routes
func (h *ArticleHandler) RegisterRoutes(r chi.Router) {
	r.Get("/articles", h.ListArticles)
	r.Post("/articles", h.AddArticle)
	r.Put("/articles/{id}", h.UpdateArticle)
	r.Delete("/articles/{id}", h.DeleteArticle)
	r.Patch("/articles/{id}/status", h.UpdateStatus)
	r.Post("/articles/sweep", h.SweepOrphans)
}

// ListArticles returns every saved article
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles := h.store.LoadArticles(r.Context())
	writeJSON(w, http.StatusOK, mappers.ToArticleListResponse(articles))
}

// AddArticle saves a new article, optionally extracting its content first
func (h *ArticleHandler) AddArticle(w http.ResponseWriter, r *http.Request) {
	var req requests.AddArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err.Error())
		return
	}

	var article *domain.Article
	if req.Extract {
		if h.extractor == nil {
			writeValidationError(w, "content extraction is not available")
			return
		}
		extracted, err := h.extractor.Extract(r.Context(), req.URL)
		if err != nil {
			writeError(w, err)
			return
		}
		article = extracted
		if req.Title != "" {
			article.Title = req.Title
		}
	} else {
		created, err := domain.NewArticle(req.Title, req.URL)
		if err != nil {
			writeValidationError(w, err.Error())
			return
		}
		created.Content = req.Content
		article = created
	}

	saved, err := h.store.AddArticle(r.Context(), *article)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, mappers.ToArticleResponse(saved))
}

// UpdateArticle applies a partial update to an existing article
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req requests.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	existing, ok := h.findArticle(r, id)
	if !ok {
		writeError(w, &coreerrors.NotFoundError{Resource: "article", ID: id})
		return
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}
	if req.Excerpt != nil {
		existing.Excerpt = *req.Excerpt
	}
	if req.Author != nil {
		existing.Author = *req.Author
	}

	if err := h.store.UpdateArticle(r.Context(), existing); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToArticleResponse(&existing))
}

// DeleteArticle removes an article
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteArticle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus changes the read status of an article
func (h *ArticleHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req requests.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err.Error())
		return
	}

	err := h.store.UpdateArticleStatus(r.Context(), id, domain.ArticleStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	existing, ok := h.findArticle(r, id)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ToArticleResponse(&existing))
}

// SweepOrphans discards content chunks that no article references
func (h *ArticleHandler) SweepOrphans(w http.ResponseWriter, r *http.Request) {
	removed, err := h.store.SweepOrphanChunks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.SweepResponse{Removed: removed})
}

// findArticle scans the collection for an article by id
func (h *ArticleHandler) findArticle(r *http.Request, id string) (domain.Article, bool) {
	for _, article := range h.store.LoadArticles(r.Context()) {
		if article.ID == id {
			return article, true
		}
	}
	return domain.Article{}, false
}
