package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"devjournal/models"
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	var input models.EntryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	entry, err := h.services.EntryService.Create(r.Context(), callerID(r), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, entry)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.services.EntryService.Get(r.Context(), chi.URLParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, entry)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	entries, total, err := h.services.EntryService.ListPublic(r.Context(), page, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondPage(w, r, entries, total, page, limit)
}

func (h *Handler) searchEntries(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	query := r.URL.Query().Get("q")

	entries, total, err := h.services.EntryService.SearchPublic(r.Context(), query, page, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondPage(w, r, entries, total, page, limit)
}

func (h *Handler) myEntries(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	query := r.URL.Query()

	filter := models.EntryFilter{
		Search: query.Get("search"),
		Page:   page,
		Limit:  limit,
	}
	if v := query.Get("isPublic"); v != "" {
		isPublic := v == "true"
		filter.IsPublic = &isPublic
	}

	entries, total, err := h.services.EntryService.ListMine(r.Context(), callerID(r), filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondPage(w, r, entries, total, page, limit)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	var update models.EntryUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	entry, err := h.services.EntryService.Update(r.Context(), chi.URLParam(r, "id"), callerID(r), update)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, entry)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EntryService.Delete(r.Context(), chi.URLParam(r, "id"), callerID(r)); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.Message{Message: "entry deleted"})
}

func (h *Handler) summarizeEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.services.EntryService.Summarize(r.Context(), chi.URLParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, entry)
}
