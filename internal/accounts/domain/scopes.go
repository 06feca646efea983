package domain

import "fmt"

// Scope strings attached to tokens and required by routes.
const (
	ScopeAdmin   = "admin"
	ScopeRefresh = "refresh"
	ScopeUser    = "user"

	// ScopeUserID is a template scope. Routes that require "the caller's
	// own id" declare it; the authorization guard expands it against the
	// request's path parameters before comparing.
	ScopeUserID = "user-{params.id}"
)

// UserScope returns the concrete self-ownership scope for a user id,
// e.g. "user-42".
func UserScope(id int64) string {
	return fmt.Sprintf("user-%d", id)
}
