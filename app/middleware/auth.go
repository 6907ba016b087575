// Package middleware provides the cross-cutting HTTP wrappers: bearer
// token validation, role gating, request logging and panic recovery.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/alirezadev/shop-api/app/httpx"
	"github.com/alirezadev/shop-api/models"
	"github.com/alirezadev/shop-api/pkg/token"
)

type contextKey string

const claimsKey contextKey = "claims"

// ClaimsFrom returns the claims stored by RequireAuth, or nil when the
// request never passed through it.
func ClaimsFrom(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(claimsKey).(*token.Claims)
	return claims
}

// RequireAuth rejects requests without a valid bearer token and stores
// the claims in the request context for downstream handlers.
func RequireAuth(cfg token.Config, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "authorization header required")
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httpx.WriteError(w, http.StatusUnauthorized, "expected format: Bearer <token>")
			return
		}
		claims, err := token.Parse(cfg, strings.TrimSpace(parts[1]))
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates mutating catalog operations behind the Admin role.
// It must run after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil {
			httpx.WriteError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if claims.Role != models.RoleAdmin {
			httpx.WriteError(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
