package resource

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/calmvio/backend/internal/model/resource"
	"github.com/calmvio/backend/pkg/utils"
)

// Handler serves the read-only wellness resource catalog.
type Handler struct {
	catalog resource.Store
}

// New creates the resource handler.
func New(catalog resource.Store) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterRoutes mounts the resource routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/resources", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/categories", h.handleCategories)
		r.Get("/{resourceID}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	results := h.catalog.List(resource.Filter{
		Category: query.Get("category"),
		Type:     query.Get("type"),
		Tag:      query.Get("tag"),
	})

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"count":     len(results),
		"resources": results,
	})
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"categories": h.catalog.Categories(),
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "resourceID")

	item, ok := h.catalog.FindByID(id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, fmt.Sprintf("Resource '%s' not found.", id))
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}
