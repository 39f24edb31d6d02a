package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByUsername(ctx, loginReq.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("User logged in", "username", userData.Username)

	return auth.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Username:    userData.Username,
		IsAdmin:     userData.IsAdmin,
	}, nil
}

// EnsureAdmin implements auth.AuthService.
func (a *AuthServiceImpl) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	_, err := a.UserRepository.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}
	if password == "" {
		return false, fmt.Errorf("admin account %q does not exist and no password was configured", username)
	}

	hash, err := a.hashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = a.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      true,
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create admin: %w", err)
	}

	return true, nil
}
