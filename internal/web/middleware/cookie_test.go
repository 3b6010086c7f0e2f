package middleware

import (
	"testing"
	"time"
)

func TestCookieCodec_RoundTrip(t *testing.T) {
	codec := NewCookieCodec("secret", time.Hour)

	value, err := codec.Mint("sid-123")
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}

	sid, err := codec.Parse(value)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if sid != "sid-123" {
		t.Fatalf("session id mismatch: %q", sid)
	}
}

func TestCookieCodec_RejectsTamperedValue(t *testing.T) {
	codec := NewCookieCodec("secret", time.Hour)

	value, err := codec.Mint("sid-123")
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}

	if _, err := codec.Parse(value + "x"); err == nil {
		t.Fatalf("expected tampered value to be rejected")
	}
}

func TestCookieCodec_RejectsForeignSecret(t *testing.T) {
	value, err := NewCookieCodec("secret-a", time.Hour).Mint("sid-123")
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}

	if _, err := NewCookieCodec("secret-b", time.Hour).Parse(value); err == nil {
		t.Fatalf("expected foreign signature to be rejected")
	}
}

func TestCookieCodec_RejectsGarbage(t *testing.T) {
	codec := NewCookieCodec("secret", time.Hour)

	if _, err := codec.Parse("not-a-token"); err == nil {
		t.Fatalf("expected garbage to be rejected")
	}
}
