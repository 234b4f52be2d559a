package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"devjournal/models"
)

type createTagRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tag, err := h.services.TagService.CreateTag(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, tag)
}

func (h *Handler) getTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.services.TagService.GetTag(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, tag)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.services.TagService.ListTags(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if tags == nil {
		tags = []models.Tag{}
	}

	respondJSON(w, r, http.StatusOK, tags)
}

func (h *Handler) popularTags(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	tags, err := h.services.TagService.PopularTags(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if tags == nil {
		tags = []models.TagWithCount{}
	}

	respondJSON(w, r, http.StatusOK, tags)
}

func (h *Handler) searchTags(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	tags, err := h.services.TagService.SearchTags(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if tags == nil {
		tags = []models.Tag{}
	}

	respondJSON(w, r, http.StatusOK, tags)
}

func (h *Handler) tagEntries(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	entries, total, err := h.services.TagService.TagEntries(r.Context(), chi.URLParam(r, "name"), page, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondPage(w, r, entries, total, page, limit)
}

func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TagService.DeleteTag(r.Context(), chi.URLParam(r, "name")); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.Message{Message: "tag deleted"})
}

func (h *Handler) addEntryTags(w http.ResponseWriter, r *http.Request) {
	h.mutateEntryTags(w, r, h.services.TagService.AddTagsToEntry)
}

func (h *Handler) replaceEntryTags(w http.ResponseWriter, r *http.Request) {
	h.mutateEntryTags(w, r, h.services.TagService.ReplaceEntryTags)
}

func (h *Handler) removeEntryTags(w http.ResponseWriter, r *http.Request) {
	h.mutateEntryTags(w, r, h.services.TagService.RemoveTagsFromEntry)
}

// mutateEntryTags handles the three entry-scoped tag operations, which
// share their request shape and response.
func (h *Handler) mutateEntryTags(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, entryID, callerID string, names []string) (models.Entry, error),
) {
	var body models.TagNames
	if !decodeJSON(w, r, &body) {
		return
	}

	entry, err := op(r.Context(), chi.URLParam(r, "id"), callerID(r), body.Tags)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, entry)
}
