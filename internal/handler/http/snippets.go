package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"devjournal/models"
)

func (h *Handler) createSnippet(w http.ResponseWriter, r *http.Request) {
	var input models.SnippetInput
	if !decodeJSON(w, r, &input) {
		return
	}

	snippet, err := h.services.SnippetService.Create(r.Context(), callerID(r), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, snippet)
}

func (h *Handler) getSnippet(w http.ResponseWriter, r *http.Request) {
	snippet, err := h.services.SnippetService.Get(r.Context(), chi.URLParam(r, "id"), callerID(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, snippet)
}

func (h *Handler) listSnippets(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	query := r.URL.Query()

	filter := models.SnippetFilter{
		UserID:   query.Get("user"),
		Language: query.Get("language"),
		Search:   query.Get("search"),
		Page:     page,
		Limit:    limit,
	}

	snippets, total, err := h.services.SnippetService.ListPublic(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondPage(w, r, snippets, total, page, limit)
}

func (h *Handler) mySnippets(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	snippets, total, err := h.services.SnippetService.ListMine(r.Context(), callerID(r), page, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondPage(w, r, snippets, total, page, limit)
}

func (h *Handler) updateSnippet(w http.ResponseWriter, r *http.Request) {
	var update models.SnippetUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	snippet, err := h.services.SnippetService.Update(r.Context(), chi.URLParam(r, "id"), callerID(r), update)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, snippet)
}

func (h *Handler) deleteSnippet(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SnippetService.Delete(r.Context(), chi.URLParam(r, "id"), callerID(r)); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.Message{Message: "snippet deleted"})
}
