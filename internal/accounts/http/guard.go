package http

import (
	"net/http"
	"strings"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/pkg/httpx"
)

// RequireScope rejects requests whose token lacks every one of the listed
// scopes. Template scopes such as "user-{params.id}" are expanded against
// the route's path values before comparison, so a route can declare "the
// caller's own id" without knowing it.
//
// Holding any one of the required scopes is enough: admin routes list both
// the admin scope and the ownership template.
func RequireScope(required ...string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			have := httpx.ScopesFromContext(r.Context())

			for _, want := range required {
				want = ExpandScopeTemplate(want, r)
				for _, got := range have {
					if got == want {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			respond(w, http.StatusForbidden, domain.StatusForbidden, nil)
		})
	}
}

// ExpandScopeTemplate substitutes {params.<name>} placeholders in a scope
// template with the request's path values. Unknown placeholders expand to
// the empty string, which can never match a held scope. Substituted values
// are never re-scanned, so path values containing placeholder syntax stay
// literal.
func ExpandScopeTemplate(scope string, r *http.Request) string {
	var b strings.Builder
	for {
		start := strings.Index(scope, "{params.")
		if start < 0 {
			break
		}
		end := strings.Index(scope[start:], "}")
		if end < 0 {
			break
		}
		end += start

		name := scope[start+len("{params.") : end]
		b.WriteString(scope[:start])
		b.WriteString(r.PathValue(name))
		scope = scope[end+1:]
	}
	b.WriteString(scope)
	return b.String()
}
