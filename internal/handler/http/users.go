package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"devjournal/internal/utils"
	"devjournal/models"
)

// currentUser returns the caller's own account, email included. The
// record is already in the context: requireAuth provisioned it.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		respondJSON(w, r, http.StatusUnauthorized, errorBody{Error: "not authenticated"})
		return
	}

	respondJSON(w, r, http.StatusOK, user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	user, err := h.services.IdentityService.UpdateProfile(r.Context(), callerID(r), update)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, user)
}

// getUser returns the public profile of any user. The email address
// never leaves the server on this path.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.IdentityService.GetUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, user.Profile())
}

func (h *Handler) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.IdentityService.GetUserByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, user.Profile())
}

// userEntries lists the public entries of one author.
func (h *Handler) userEntries(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	entries, total, err := h.services.EntryService.ListPublicByUser(r.Context(), chi.URLParam(r, "id"), page, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondPage(w, r, entries, total, page, limit)
}
