package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type usernameKey struct{}

// AuthRequired rejects requests without a valid access token. The verified
// username is put on the request context for handlers to log.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if errors.Is(err, jwtauth.ErrExpired) {
					response.HandleError(w, auth.ErrTokenExpired)
					return
				}
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			username, _ := claims["username"].(string)
			ctx := context.WithValue(r.Context(), usernameKey{}, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// Username returns the authenticated username, or "" outside AuthRequired.
func Username(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey{}).(string)
	return username
}
