package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devjournal/internal/service"
	"devjournal/internal/store"
	"devjournal/models"
)

// ─────────────────────────────────────────────
// createSnippet
// ─────────────────────────────────────────────

// TestCreateSnippet_ReturnsCreated verifies the happy path.
func TestCreateSnippet_ReturnsCreated(t *testing.T) {
	snippetSvc := &mockSnippetService{
		createFn: func(ctx context.Context, userID string, input models.SnippetInput) (models.Snippet, error) {
			require.Equal(t, "sub-1", userID)
			require.Equal(t, "go", input.Language)
			return models.Snippet{ID: "snip-1", UserID: userID}, nil
		},
	}
	router := newTestHandler(&service.Services{SnippetService: snippetSvc}, nil).Init()

	body := strings.NewReader(`{"title":"worker pool","code":"func main() {}","language":"go"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/snippets", body)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

// TestCreateSnippet_RequiresAuth verifies that the route is protected.
func TestCreateSnippet_RequiresAuth(t *testing.T) {
	router := newTestHandler(nil, nil).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/snippets", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// getSnippet
// ─────────────────────────────────────────────

// TestGetSnippet_HiddenSnippetIs404 verifies that private snippets of
// other users surface as not found.
func TestGetSnippet_HiddenSnippetIs404(t *testing.T) {
	snippetSvc := &mockSnippetService{
		getFn: func(ctx context.Context, id, callerID string) (models.Snippet, error) {
			return models.Snippet{}, store.ErrSnippetNotFound
		},
	}
	router := newTestHandler(&service.Services{SnippetService: snippetSvc}, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/snippets/snip-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// listSnippets
// ─────────────────────────────────────────────

// TestListSnippets_BuildsFilterFromQuery verifies that the query
// parameters are translated into the service filter.
func TestListSnippets_BuildsFilterFromQuery(t *testing.T) {
	snippetSvc := &mockSnippetService{
		listPublicFn: func(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, int64, error) {
			require.Equal(t, "user-7", filter.UserID)
			require.Equal(t, "go", filter.Language)
			require.Equal(t, "pool", filter.Search)
			require.Equal(t, 3, filter.Page)
			return []models.Snippet{}, 0, nil
		},
	}
	router := newTestHandler(&service.Services{SnippetService: snippetSvc}, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/snippets?user=user-7&language=go&search=pool&page=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestListSnippets_UnknownLanguageIs400 verifies the language filter
// rejection maps to 400.
func TestListSnippets_UnknownLanguageIs400(t *testing.T) {
	snippetSvc := &mockSnippetService{
		listPublicFn: func(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, int64, error) {
			return nil, 0, service.ErrInvalidInput
		},
	}
	router := newTestHandler(&service.Services{SnippetService: snippetSvc}, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/snippets?language=cobol", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestMySnippets_WrapsInPaginationEnvelope verifies the private listing
// and its envelope.
func TestMySnippets_WrapsInPaginationEnvelope(t *testing.T) {
	snippetSvc := &mockSnippetService{
		listMineFn: func(ctx context.Context, userID string, page, limit int) ([]models.Snippet, int64, error) {
			require.Equal(t, "sub-1", userID)
			return []models.Snippet{{ID: "snip-1"}}, 1, nil
		},
	}
	router := newTestHandler(&service.Services{SnippetService: snippetSvc}, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/snippets/my", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Paginated[models.Snippet]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(1), got.Total)
	assert.Len(t, got.Data, 1)
}

// ─────────────────────────────────────────────
// updateSnippet / deleteSnippet
// ─────────────────────────────────────────────

// TestUpdateSnippet_ForeignEntryLinkForbidden verifies that linking to
// another user's entry maps to 403.
func TestUpdateSnippet_ForeignEntryLinkForbidden(t *testing.T) {
	snippetSvc := &mockSnippetService{
		updateFn: func(ctx context.Context, id, callerID string, update models.SnippetUpdate) (models.Snippet, error) {
			return models.Snippet{}, service.ErrNotResourceOwner
		},
	}
	router := newTestHandler(&service.Services{SnippetService: snippetSvc}, nil).Init()

	req := httptest.NewRequest(http.MethodPatch, "/api/snippets/snip-1", strings.NewReader(`{"entryId":"entry-9"}`))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// TestDeleteSnippet_ReturnsMessage verifies the confirmation body.
func TestDeleteSnippet_ReturnsMessage(t *testing.T) {
	router := newTestHandler(nil, nil).Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/snippets/snip-1", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "snippet deleted")
}
