package memory

import (
	"context"
	"testing"
	"time"

	"github.com/quillboard/quillboard-web/internal/core/ports"
)

func TestSessionStorage_RoundTrip(t *testing.T) {
	s := NewSessionStorage(0)
	rec := ports.SessionRecord{Token: "tok", User: `{"id":"u1"}`, IsAdmin: "false"}

	if err := s.Write(context.Background(), "sid", rec); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got, err := s.Read(context.Background(), "sid")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got != rec {
		t.Fatalf("record mismatch: got %+v want %+v", got, rec)
	}
}

func TestSessionStorage_MissingReadsEmpty(t *testing.T) {
	s := NewSessionStorage(0)

	got, err := s.Read(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !got.Empty() {
		t.Fatalf("expected empty record, got %+v", got)
	}
}

func TestSessionStorage_DeleteRemoves(t *testing.T) {
	s := NewSessionStorage(0)
	rec := ports.SessionRecord{Token: "tok", User: "{}", IsAdmin: "true"}

	if err := s.Write(context.Background(), "sid", rec); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := s.Delete(context.Background(), "sid"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	got, _ := s.Read(context.Background(), "sid")
	if !got.Empty() {
		t.Fatalf("expected record gone, got %+v", got)
	}
}

func TestSessionStorage_TTLExpiry(t *testing.T) {
	s := NewSessionStorage(10 * time.Millisecond)
	rec := ports.SessionRecord{Token: "tok", User: "{}", IsAdmin: "false"}

	if err := s.Write(context.Background(), "sid", rec); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	got, err := s.Read(context.Background(), "sid")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !got.Empty() {
		t.Fatalf("expected expired record to read empty, got %+v", got)
	}
}
