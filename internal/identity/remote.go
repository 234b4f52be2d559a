package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"devjournal/internal/config"
	"devjournal/models"

	"github.com/go-resty/resty/v2"
)

const remoteVerifyTimeout = 10 * time.Second

// providerUser is the response body of the provider's user endpoint.
type providerUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// remoteVerifier delegates token validation to the identity provider
// itself by fetching the token holder's user record. A 200 response
// proves the token is valid; anything else rejects it.
type remoteVerifier struct {
	client *resty.Client
	apiKey string
}

// NewRemoteVerifier constructs a [Verifier] that calls the provider's
// GET /auth/v1/user endpoint with the presented token.
func NewRemoteVerifier(cfg config.Auth) Verifier {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.ProviderURL, "/")).
		SetTimeout(remoteVerifyTimeout)

	return &remoteVerifier{client: cli, apiKey: cfg.ProviderAPIKey}
}

// Verify asks the provider who the token belongs to.
func (v *remoteVerifier) Verify(ctx context.Context, token string) (models.Principal, error) {
	var user providerUser

	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("apikey", v.apiKey).
		SetResult(&user).
		Get("/auth/v1/user")
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrProviderUnreachable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return models.Principal{}, fmt.Errorf("%w: provider responded %d", ErrInvalidToken, resp.StatusCode())
	}
	if user.ID == "" {
		return models.Principal{}, fmt.Errorf("%w: provider returned no user id", ErrInvalidToken)
	}

	principal := models.Principal{
		SubjectID: user.ID,
		Email:     user.Email,
	}
	fillMetadata(&principal, user.UserMetadata)

	return principal, nil
}
