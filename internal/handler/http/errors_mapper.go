package http

import (
	"errors"
	"net/http"

	"devjournal/internal/ai"
	"devjournal/internal/identity"
	"devjournal/internal/service"
	"devjournal/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:          http.StatusBadRequest,
	service.ErrNotResourceOwner:      http.StatusForbidden,
	service.ErrPrincipalMissingEmail: http.StatusUnauthorized,

	identity.ErrInvalidToken:        http.StatusUnauthorized,
	identity.ErrProviderUnreachable: http.StatusBadGateway,

	ai.ErrSummarizerDisabled: http.StatusServiceUnavailable,

	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrEntryNotFound:     http.StatusNotFound,
	store.ErrSnippetNotFound:   http.StatusNotFound,
	store.ErrTagNotFound:       http.StatusNotFound,
	store.ErrUserAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
