package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"goodfood-shop/internal/domain"
)

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal decodes the user snapshot injected by the auth gateway in
// the X-User header. Token verification happens upstream; an absent or
// malformed header leaves the request anonymous.
func WithPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get("X-User"); raw != "" {
			var user domain.User
			if err := json.Unmarshal([]byte(raw), &user); err == nil && user.ID != "" {
				r = r.WithContext(context.WithValue(r.Context(), principalKey, &user))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Principal returns the authenticated user attached to the request, or nil
// for anonymous calls.
func Principal(r *http.Request) *domain.User {
	user, _ := r.Context().Value(principalKey).(*domain.User)
	return user
}
