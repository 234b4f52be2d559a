package http

import (
	"context"
	"net/http"

	"devjournal/internal/logger"
	"devjournal/internal/utils"
)

// requireAuth is an HTTP middleware that enforces bearer-token
// authentication with just-in-time provisioning.
//
// It extracts the bearer token from the "Authorization" header, verifies
// it against the identity provider, and resolves the verified principal
// to a local account (creating one on first sight). On success both the
// full user record and its id are stored in the request context under
// [utils.UserCtxKey] and [utils.UserIDCtxKey].
//
// Requests without a valid token are rejected with HTTP 401.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			respondJSON(w, r, http.StatusUnauthorized, errorBody{Error: ErrEmptyAuthorizationHeader.Error()})
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			respondJSON(w, r, http.StatusUnauthorized, errorBody{Error: ErrInvalidAuthorizationHeader.Error()})
			return
		}

		ctx := r.Context()

		principal, err := h.verifier.Verify(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token verification failed")
			respondServiceError(w, r, err)
			return
		}

		user, err := h.services.IdentityService.ProvisionUser(ctx, principal)
		if err != nil {
			log.Err(err).Str("subject", principal.SubjectID).Msg("user provisioning failed")
			respondServiceError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth resolves the caller's identity when a valid bearer token
// is present, and lets the request through anonymously otherwise. Only
// the user id is stored; no provisioning happens on read-only paths.
//
// Invalid tokens are treated the same as absent ones: public content is
// public either way, and failing the request would only break logged-out
// clients with stale tokens.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()

		principal, err := h.verifier.Verify(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("ignoring invalid token on public route")
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, principal.SubjectID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// callerID returns the authenticated user's id from the request
// context, or the empty string for anonymous callers.
func callerID(r *http.Request) string {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}
