package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quillboard/quillboard-web/internal/core/ports"
)

// Key layout per session: session:<id>:token, session:<id>:user,
// session:<id>:isadmin. These three keys are the entire persisted state.
const (
	fieldToken   = "token"
	fieldUser    = "user"
	fieldIsAdmin = "isadmin"
)

// SessionStorage persists session records in Redis with a shared TTL.
type SessionStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStorage wraps client. Records expire after ttl.
func NewSessionStorage(client *redis.Client, ttl time.Duration) *SessionStorage {
	return &SessionStorage{client: client, ttl: ttl}
}

func (s *SessionStorage) Read(ctx context.Context, id string) (ports.SessionRecord, error) {
	vals, err := s.client.MGet(ctx, s.key(id, fieldToken), s.key(id, fieldUser), s.key(id, fieldIsAdmin)).Result()
	if err != nil {
		return ports.SessionRecord{}, fmt.Errorf("session read: %w", err)
	}

	return ports.SessionRecord{
		Token:   asString(vals[0]),
		User:    asString(vals[1]),
		IsAdmin: asString(vals[2]),
	}, nil
}

// Write stores all three fields in one pipeline so a record is never
// half-visible across fields.
func (s *SessionStorage) Write(ctx context.Context, id string, rec ports.SessionRecord) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(id, fieldToken), rec.Token, s.ttl)
	pipe.Set(ctx, s.key(id, fieldUser), rec.User, s.ttl)
	pipe.Set(ctx, s.key(id, fieldIsAdmin), rec.IsAdmin, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session write: %w", err)
	}
	return nil
}

func (s *SessionStorage) Delete(ctx context.Context, id string) error {
	err := s.client.Del(ctx, s.key(id, fieldToken), s.key(id, fieldUser), s.key(id, fieldIsAdmin)).Err()
	if err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStorage) key(id, field string) string {
	return fmt.Sprintf("session:%s:%s", id, field)
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
