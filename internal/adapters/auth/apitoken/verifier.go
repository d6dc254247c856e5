package apitoken

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vet-form/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenUnknown = errors.New("token does not match any visibility")
	ErrBadEntry     = errors.New("invalid token hash entry")
)

// Entry asocia una visibilidad ("public", "hidden") al hash bcrypt de su token estático.
type Entry struct {
	Visibility string
	Hash       []byte
}

// ParseEntries lee "public=<bcrypt>,hidden=<bcrypt>" (VISIBILITY_TOKEN_HASHES).
func ParseEntries(raw string) ([]Entry, error) {
	var out []Entry
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		vis, hash, ok := strings.Cut(part, "=")
		vis = strings.TrimSpace(vis)
		hash = strings.TrimSpace(hash)
		if !ok || vis == "" || hash == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadEntry, part)
		}
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadEntry, vis, err)
		}
		out = append(out, Entry{Visibility: vis, Hash: []byte(hash)})
	}
	return out, nil
}

// HashToken genera el hash para configurar un token nuevo.
func HashToken(token string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verifier implementa auth.AuthVerifier para los tokens estáticos de visibilidad.
type Verifier struct {
	entries []Entry
}

func NewVerifier(entries []Entry) *Verifier {
	return &Verifier{entries: entries}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}
	for _, e := range v.entries {
		if bcrypt.CompareHashAndPassword(e.Hash, []byte(token)) == nil {
			return auth.Claims{
				Subject:    "visibility:" + e.Visibility,
				Role:       auth.RoleSystem,
				Visibility: e.Visibility,
			}, nil
		}
	}
	return auth.Claims{}, ErrTokenUnknown
}
