// Package identity verifies bearer tokens issued by an external
// identity provider and turns them into Principals. Two verification
// paths exist: local HS256 signature checks against the provider's
// shared secret, and a remote round trip to the provider's user
// endpoint when no secret is configured.
package identity

import (
	"context"
	"errors"

	"devjournal/internal/config"
	"devjournal/internal/logger"
	"devjournal/models"
)

var (
	// ErrInvalidToken is returned for tokens that fail signature or
	// claim validation, and for tokens the provider rejects.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrProviderUnreachable is returned when remote verification cannot
	// reach the identity provider at all.
	ErrProviderUnreachable = errors.New("identity provider unreachable")
)

// Verifier checks a raw bearer token and extracts the principal it
// identifies.
type Verifier interface {
	Verify(ctx context.Context, token string) (models.Principal, error)
}

// NewVerifier selects the verification path from configuration: local
// HS256 when a JWT secret is present, otherwise a remote check against
// the provider's user endpoint.
func NewVerifier(cfg config.Auth, log *logger.Logger) Verifier {
	if cfg.JWTSecret != "" {
		log.Debug().Str("func", "NewVerifier").Msg("using local JWT verification")
		return NewLocalVerifier(cfg)
	}

	log.Debug().Str("func", "NewVerifier").Str("provider_url", cfg.ProviderURL).Msg("using remote token verification")
	return NewRemoteVerifier(cfg)
}
