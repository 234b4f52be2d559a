package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devjournal/internal/identity"
	"devjournal/internal/service"
	"devjournal/models"
)

// TestRequireAuth_MissingHeader verifies that a request without an
// Authorization header is rejected with 401.
func TestRequireAuth_MissingHeader(t *testing.T) {
	h := newTestHandler(nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	h.requireAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

// TestRequireAuth_MalformedHeader verifies that a non-bearer header is
// rejected with 401.
func TestRequireAuth_MalformedHeader(t *testing.T) {
	h := newTestHandler(nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	h.requireAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestRequireAuth_InvalidToken verifies that a token the provider
// rejects results in 401.
func TestRequireAuth_InvalidToken(t *testing.T) {
	verifier := &mockVerifier{
		verifyFn: func(ctx context.Context, token string) (models.Principal, error) {
			return models.Principal{}, identity.ErrInvalidToken
		},
	}
	h := newTestHandler(nil, verifier)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	h.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestRequireAuth_ProvisionsAndForwards verifies that a valid token is
// resolved to a local account and both the user and its id land in the
// request context.
func TestRequireAuth_ProvisionsAndForwards(t *testing.T) {
	verifier := &mockVerifier{
		verifyFn: func(ctx context.Context, token string) (models.Principal, error) {
			require.Equal(t, "good-token", token)
			return models.Principal{SubjectID: "sub-42", Email: "dev@example.com"}, nil
		},
	}
	identitySvc := &mockIdentityService{
		provisionFn: func(ctx context.Context, principal models.Principal) (models.User, error) {
			require.Equal(t, "sub-42", principal.SubjectID)
			return models.User{ID: "sub-42", Username: "dev"}, nil
		},
	}
	h := newTestHandler(&service.Services{IdentityService: identitySvc}, verifier)

	var gotCallerID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCallerID = callerID(r)
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	h.requireAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "sub-42", gotCallerID)
}

// TestRequireAuth_ProviderUnreachable verifies that provider outages
// surface as 502 rather than 401.
func TestRequireAuth_ProviderUnreachable(t *testing.T) {
	verifier := &mockVerifier{
		verifyFn: func(ctx context.Context, token string) (models.Principal, error) {
			return models.Principal{}, identity.ErrProviderUnreachable
		},
	}
	h := newTestHandler(nil, verifier)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	h.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

// TestOptionalAuth_AnonymousPassesThrough verifies that requests without
// a token reach the handler with no caller id set.
func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	h := newTestHandler(nil, nil)

	var gotCallerID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCallerID = callerID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	rec := httptest.NewRecorder()
	h.optionalAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, gotCallerID)
}

// TestOptionalAuth_InvalidTokenTreatedAsAnonymous verifies that a stale
// token on a public route does not fail the request.
func TestOptionalAuth_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	verifier := &mockVerifier{
		verifyFn: func(ctx context.Context, token string) (models.Principal, error) {
			return models.Principal{}, identity.ErrInvalidToken
		},
	}
	h := newTestHandler(nil, verifier)

	var gotCallerID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCallerID = callerID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	h.optionalAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, gotCallerID)
}

// TestOptionalAuth_ValidTokenSetsCallerID verifies that verified callers
// on public routes are identified without provisioning.
func TestOptionalAuth_ValidTokenSetsCallerID(t *testing.T) {
	provisioned := false
	identitySvc := &mockIdentityService{
		provisionFn: func(ctx context.Context, principal models.Principal) (models.User, error) {
			provisioned = true
			return models.User{}, nil
		},
	}
	h := newTestHandler(&service.Services{IdentityService: identitySvc}, nil)

	var gotCallerID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCallerID = callerID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	h.optionalAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sub-1", gotCallerID)
	assert.False(t, provisioned, "optionalAuth must not provision accounts")
}
