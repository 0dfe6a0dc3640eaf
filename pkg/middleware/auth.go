package middleware

import (
	"net/http"
	"strings"

	"shopapi/pkg/auth"
	"shopapi/pkg/response"
)

// Authenticate resolves a Bearer token into a request identity.
//
// A missing Authorization header leaves the request anonymous — read-only
// endpoints are public, so the decision whether anonymity is acceptable
// belongs to the policy check, not to this middleware. A present but invalid
// token is rejected outright.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		identity, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := auth.WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
