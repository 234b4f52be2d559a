// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys and
// Authorization-header parsing.
package utils

import (
	"context"

	"devjournal/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated caller's user id
// is stored in the request context. Set by both the required and the
// optional auth middleware.
var UserIDCtxKey = contextKey("userID")

// UserCtxKey is the key under which the full provisioned models.User is
// stored in the request context. Set only by the required auth
// middleware, since the optional variant does not provision.
var UserCtxKey = contextKey("user")

// GetUserIDFromContext retrieves the caller's user id from the context.
//
// Returns the id and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing (anonymous request) or mistyped
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// GetUserFromContext retrieves the provisioned user record from the
// context. Only present on requests that passed the required auth
// middleware.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
