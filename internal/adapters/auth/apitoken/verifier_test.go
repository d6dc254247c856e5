package apitoken

import (
	"context"
	"errors"
	"testing"

	"vet-form/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

func mustHash(t *testing.T, token string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(b)
}

func TestVerifier_MatchesVisibility(t *testing.T) {
	raw := "public=" + mustHash(t, "pub-token") + ", hidden=" + mustHash(t, "hid-token")

	entries, err := ParseEntries(raw)
	if err != nil {
		t.Fatalf("ParseEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	v := NewVerifier(entries)

	c, err := v.Verify(context.Background(), "hid-token")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if c.Role != auth.RoleSystem || c.Visibility != "hidden" || c.Subject == "" {
		t.Fatalf("unexpected claims: %+v", c)
	}

	if _, err := v.Verify(context.Background(), "other"); !errors.Is(err, ErrTokenUnknown) {
		t.Fatalf("expected ErrTokenUnknown, got %v", err)
	}
	if _, err := v.Verify(context.Background(), " "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestParseEntries_Invalid(t *testing.T) {
	for _, raw := range []string{"public", "=abc", "public=not-bcrypt"} {
		if _, err := ParseEntries(raw); !errors.Is(err, ErrBadEntry) {
			t.Fatalf("%q: expected ErrBadEntry, got %v", raw, err)
		}
	}

	entries, err := ParseEntries("")
	if err != nil || len(entries) != 0 {
		t.Fatalf("empty config should yield no entries, got %v %v", entries, err)
	}
}

func TestHashToken_RoundTrip(t *testing.T) {
	h, err := HashToken("abc")
	if err != nil {
		t.Fatalf("HashToken: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(h), []byte("abc")) != nil {
		t.Fatalf("hash does not match token")
	}
}
