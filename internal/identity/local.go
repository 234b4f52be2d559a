package identity

import (
	"context"
	"fmt"

	"devjournal/internal/config"
	"devjournal/models"

	"github.com/golang-jwt/jwt/v5"
)

// providerClaims is the claim set carried by provider access tokens.
// The registered claims cover sub/iss/exp; email and the free-form
// user_metadata object are provider extensions.
type providerClaims struct {
	jwt.RegisteredClaims
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// localVerifier validates tokens with the provider's shared HS256
// secret, without any network round trip.
type localVerifier struct {
	secret []byte
	issuer string
}

// NewLocalVerifier constructs a [Verifier] that checks token signatures
// against cfg.JWTSecret. When cfg.JWTIssuer is non-empty the "iss"
// claim is validated as well.
func NewLocalVerifier(cfg config.Auth) Verifier {
	return &localVerifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
	}
}

// Verify parses and validates the token, then maps its claims onto a
// [models.Principal]. Tokens without a subject are rejected: there is
// no identity to provision without one.
func (v *localVerifier) Verify(_ context.Context, token string) (models.Principal, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &providerClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return models.Principal{}, fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}

	principal := models.Principal{
		SubjectID: claims.Subject,
		Email:     claims.Email,
	}
	fillMetadata(&principal, claims.UserMetadata)

	return principal, nil
}

// fillMetadata copies the optional profile fields from the provider's
// user_metadata object. Providers differ on the username key, so both
// common spellings are accepted.
func fillMetadata(p *models.Principal, metadata map[string]any) {
	if metadata == nil {
		return
	}

	if name, ok := metadata["name"].(string); ok {
		p.Name = name
	} else if fullName, ok := metadata["full_name"].(string); ok {
		p.Name = fullName
	}
	if username, ok := metadata["user_name"].(string); ok {
		p.Username = username
	} else if preferred, ok := metadata["preferred_username"].(string); ok {
		p.Username = preferred
	}
	if avatar, ok := metadata["avatar_url"].(string); ok {
		p.AvatarURL = avatar
	}
}
