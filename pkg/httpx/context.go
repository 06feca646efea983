package httpx

import (
	"context"

	"github.com/wayfarerhq/accounts/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyScopes ctxKey = "scopes"
	CtxKeyClaims ctxKey = "claims"
)

// ContextWithAuth stores the verified token's subject, scopes and full
// claims for downstream handlers.
func ContextWithAuth(ctx context.Context, claims jwtx.Claims, userID int64) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	ctx = context.WithValue(ctx, CtxKeyScopes, claims.Scopes)
	ctx = context.WithValue(ctx, CtxKeyClaims, claims)
	return ctx
}

// UserIDFromContext returns the authenticated user id, or false when the
// request never passed authentication.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(int64)
	return id, ok
}

// ScopesFromContext returns the verified token's scopes.
func ScopesFromContext(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}

// ClaimsFromContext returns the verified token claims.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}
