package jwttokens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-form/internal/ports/auth"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrNotConfigured = errors.New("jwt secret not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrTokenInvalid  = errors.New("token is invalid")
)

type tokenClaims struct {
	Role       string `json:"role"`
	Visibility string `json:"visibility"`
	jwt.RegisteredClaims
}

// Manager firma y verifica los tokens form_user / content_management (HS256).
// Implementa auth.TokenIssuer y auth.AuthVerifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New: ttl <= 0 => tokens sin expiración (como los links del sistema anterior).
func New(secret string, ttl time.Duration) (*Manager, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrNotConfigured
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (m *Manager) Issue(c auth.Claims) (string, error) {
	now := m.now()
	rc := jwt.RegisteredClaims{
		Subject:  c.Subject,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if m.ttl > 0 {
		rc.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role:             string(c.Role),
		Visibility:       c.Visibility,
		RegisteredClaims: rc,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *Manager) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var tc tokenClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, &tc, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	if strings.TrimSpace(tc.Subject) == "" || tc.Role == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing sub or role", ErrTokenInvalid)
	}

	return auth.Claims{
		Subject:    tc.Subject,
		Role:       auth.Role(tc.Role),
		Visibility: tc.Visibility,
	}, nil
}
