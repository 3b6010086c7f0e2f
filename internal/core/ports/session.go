package ports

import (
	"context"

	"github.com/quillboard/quillboard-web/internal/core/domain"
)

// SessionRecord is the durable per-browser state, stored as three raw string
// fields: an opaque bearer token, the serialized user identity, and the admin
// flag as "true"/"false". This layout is the entire persisted state.
type SessionRecord struct {
	Token   string
	User    string
	IsAdmin string
}

// Empty reports whether no field of the record is set.
func (r SessionRecord) Empty() bool {
	return r.Token == "" && r.User == "" && r.IsAdmin == ""
}

// SessionStorage persists session records keyed by session ID. A missing
// record reads back as the zero SessionRecord, not an error.
type SessionStorage interface {
	Read(ctx context.Context, id string) (SessionRecord, error)
	Write(ctx context.Context, id string, rec SessionRecord) error
	Delete(ctx context.Context, id string) error
}

// SessionStore is the single source of truth for who is logged in and with
// what privilege, durable across visits.
type SessionStore interface {
	// Initialize resolves the durable record for id into a Session. The
	// returned session always has IsLoading=false unless the storage read
	// itself failed, in which case identity is unknown and the session is
	// returned still loading.
	Initialize(ctx context.Context, id string) domain.Session

	// Login overwrites the record wholesale. The token is opaque here.
	Login(ctx context.Context, id, token string, user *domain.User, isAdmin bool) error

	// Logout clears the record wholesale. Idempotent.
	Logout(ctx context.Context, id string) error
}
