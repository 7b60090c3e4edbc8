package handlers

import (
	"context"

	"blogCPT/internal/models"
)

type claimsKey struct{}

// ContextWithClaims stores the authenticated caller on the request context.
func ContextWithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the caller set by the auth middleware, or nil.
func ClaimsFromContext(ctx context.Context) *models.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*models.Claims)
	return claims
}
