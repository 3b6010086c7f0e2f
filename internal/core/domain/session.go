package domain

import "errors"

var ErrSessionNotFound = errors.New("session not found")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrAdminRequired = errors.New("admin privilege required")

// Session is the per-browser authentication state. Token and User are both
// present or both absent; IsAdmin is only meaningful while User is set.
// IsLoading marks a session whose durable record could not be resolved yet —
// no access decision may be made in that state.
type Session struct {
	Token     string
	User      *User
	IsAdmin   bool
	IsLoading bool
}

// Authenticated reports whether the session carries a resolved identity.
func (s Session) Authenticated() bool {
	return !s.IsLoading && s.User != nil && s.Token != ""
}

// Admin reports whether the session carries admin privilege. Always false for
// unauthenticated sessions, regardless of the stored flag.
func (s Session) Admin() bool {
	return s.Authenticated() && s.IsAdmin
}
