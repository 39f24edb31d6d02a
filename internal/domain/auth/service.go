package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// EnsureAdmin creates the admin account if it does not exist yet.
	EnsureAdmin(ctx context.Context, username, password string) (created bool, err error)
}
