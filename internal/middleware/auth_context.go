package middleware

import (
	"context"
	"net/http"
	"strings"

	"vet-form/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AccessTokenParam es el query param que usan los links enviados por email.
const AccessTokenParam = "access-token"

// AuthContext:
// - Toma el token de "Authorization: Bearer" o, si no hay, del query param access-token.
// - Prueba los verifiers en orden; el primero que acepta setea claims.
// - Si ninguno acepta, el request sigue igual; los handlers decidirán si exigen auth.
func AuthContext(verifiers ...auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				token = strings.TrimSpace(r.URL.Query().Get(AccessTokenParam))
			}
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			for _, v := range verifiers {
				if v == nil {
					continue
				}
				claims, err := v.Verify(r.Context(), token)
				if err != nil {
					continue
				}
				ctx := context.WithValue(r.Context(), claimsKey, claims)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole corta con 401 sin claims y 403 si el rol no está permitido.
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}

// WithClaims inyecta claims en el contexto (tests y llamadas internas).
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
