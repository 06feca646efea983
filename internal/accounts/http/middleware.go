package http

import (
	"net/http"
	"strings"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/pkg/httpx"
	"github.com/wayfarerhq/accounts/pkg/jwtx"
	"github.com/wayfarerhq/accounts/pkg/slogx"
)

// Authn verifies the Authorization header against the given strategy and
// injects the claims into the request context. Guard failures use real
// transport statuses (401 here), unlike domain outcomes which ride on 200.
//
// The header may carry the bare token or the "Bearer " prefix.
func Authn(v jwtx.Verifier) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authz := strings.TrimSpace(r.Header.Get("Authorization"))
			if authz == "" {
				respond(w, http.StatusUnauthorized, domain.StatusUnauthorized, nil)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				slogx.FromContext(ctx).Warn("token verification failed", "err", err)
				respond(w, http.StatusUnauthorized, domain.StatusUnauthorized, nil)
				return
			}

			userID, err := claims.SubjectID()
			if err != nil {
				respond(w, http.StatusUnauthorized, domain.StatusUnauthorized, nil)
				return
			}

			ctx = httpx.ContextWithAuth(ctx, claims, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
