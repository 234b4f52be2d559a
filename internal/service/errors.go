package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks request bodies or parameters that fail
	// validation. Always wrapped with a field-specific message.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotResourceOwner is returned when a caller attempts to modify a
	// resource that belongs to another user.
	ErrNotResourceOwner = errors.New("not the resource owner")

	// ErrPrincipalMissingEmail is returned when a verified token carries
	// no email address, which makes first-time provisioning impossible.
	ErrPrincipalMissingEmail = errors.New("token carries no email address")
)

// invalid wraps ErrInvalidInput with a field name and reason.
func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, reason)
}
