// ABOUTME: Feed import handlers for the HTTP API
// ABOUTME: Saves every entry of an RSS/Atom feed as an article

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"readstash-api/api/dto/requests"
	"readstash-api/api/dto/responses"
	"readstash-api/core/interfaces"
)

// FeedHandler handles feed import requests
type FeedHandler struct {
	importer interfaces.FeedImporter
	logger   interfaces.Logger
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(importer interfaces.FeedImporter, logger interfaces.Logger) *FeedHandler {
	return &FeedHandler{
		importer: importer,
		logger:   logger,
	}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(r chi.Router) {
	r.Post("/feeds/import", h.ImportFeed)
}

// ImportFeed fetches a feed and saves its entries as articles
func (h *FeedHandler) ImportFeed(w http.ResponseWriter, r *http.Request) {
	var req requests.ImportFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err.Error())
		return
	}

	imported, err := h.importer.ImportFeed(r.Context(), req.URL)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.logger != nil {
		h.logger.Info("feed import completed", map[string]interface{}{
			"url":      req.URL,
			"imported": imported,
		})
	}

	writeJSON(w, http.StatusOK, responses.ImportFeedResponse{Imported: imported})
}
