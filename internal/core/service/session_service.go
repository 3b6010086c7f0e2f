package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/quillboard/quillboard-web/internal/core/domain"
	"github.com/quillboard/quillboard-web/internal/core/ports"
)

// SessionService implements ports.SessionStore over a SessionStorage backend.
// Records are always written and cleared wholesale; there is no partial
// update path.
type SessionService struct {
	storage ports.SessionStorage
	log     zerolog.Logger
}

func NewSessionService(storage ports.SessionStorage, log zerolog.Logger) *SessionService {
	return &SessionService{storage: storage, log: log}
}

// Initialize loads the durable record for id. The session is populated only
// when both token and user are present; a half-written record counts as
// logged out. A failed storage read leaves identity unknown, so the session
// comes back still loading and the caller must not make an access decision.
func (s *SessionService) Initialize(ctx context.Context, id string) domain.Session {
	if id == "" {
		return domain.Session{}
	}

	rec, err := s.storage.Read(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", id).Msg("session storage read failed")
		return domain.Session{IsLoading: true}
	}

	if rec.Token == "" || rec.User == "" {
		return domain.Session{}
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rec.User), &user); err != nil {
		s.log.Warn().Err(err).Str("session_id", id).Msg("discarding corrupt session record")
		return domain.Session{}
	}

	return domain.Session{
		Token:   rec.Token,
		User:    &user,
		IsAdmin: rec.IsAdmin == "true",
	}
}

// Login overwrites the record with the given triple. The token is opaque and
// not inspected.
func (s *SessionService) Login(ctx context.Context, id, token string, user *domain.User, isAdmin bool) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	rec := ports.SessionRecord{
		Token:   token,
		User:    string(raw),
		IsAdmin: strconv.FormatBool(isAdmin),
	}
	return s.storage.Write(ctx, id, rec)
}

// Logout clears the record. Calling it for an unknown or already cleared
// session is a no-op.
func (s *SessionService) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.storage.Delete(ctx, id)
}
