package httpx

import (
	"net/http"
	"slices"
)

// RequireRole the caller's access token must carry one of the given roles.
// Must run after AuthnMiddleware.
func RequireRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(roles, roleFromCtx(r.Context())) {
				w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope"`)
				WriteError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
