package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"careercatalyst/internal/domain/user"
	"careercatalyst/internal/pkg/jwt"
	"careercatalyst/internal/usecase/auth"

	"github.com/google/uuid"
)

// AuthResult carries the sanitized user plus the issued token where the
// operation produces one.
type AuthResult struct {
	User  user.User
	Token string
}

type AuthUsecase struct {
	auth       *auth.Service
	tokens     jwt.Service
	completion *CompletionUsecase
	users      user.Repository
}

func NewAuthUsecase(svc *auth.Service, tokens jwt.Service, completion *CompletionUsecase, users user.Repository) *AuthUsecase {
	return &AuthUsecase{
		auth:       svc,
		tokens:     tokens,
		completion: completion,
		users:      users,
	}
}

func (uc *AuthUsecase) Register(ctx context.Context, in auth.RegisterInput) (AuthResult, error) {
	u, err := uc.auth.Register(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			return AuthResult{}, fmt.Errorf("%w: %v", ErrValidation, err)
		case errors.Is(err, auth.ErrEmailAlreadyRegistered):
			return AuthResult{}, fmt.Errorf("%w: email already registered", ErrDuplicate)
		default:
			return AuthResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	token, err := uc.tokens.GenerateToken(u.ID, u.Role)
	if err != nil {
		return AuthResult{}, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	slog.Info("user registered", "component", "auth", "user_id", u.ID, "role", u.Role)
	return AuthResult{User: u, Token: token}, nil
}

// Login authenticates and reconciles the completion flag best effort. If
// the profile store is unreachable the stored flag is served as-is.
func (uc *AuthUsecase) Login(ctx context.Context, in auth.LoginInput) (AuthResult, error) {
	u, err := uc.auth.Login(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return AuthResult{}, fmt.Errorf("%w: invalid credentials", ErrValidation)
		default:
			return AuthResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	reconciled, err := uc.completion.Reconcile(ctx, u)
	if err != nil {
		slog.Warn("completion reconcile skipped on login",
			"component", "auth",
			"user_id", u.ID,
			"error", err)
	} else {
		u = reconciled
	}

	token, err := uc.tokens.GenerateToken(u.ID, u.Role)
	if err != nil {
		return AuthResult{}, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	return AuthResult{User: u, Token: token}, nil
}

// CurrentUser serves the authenticated identity with a reconciled
// completion flag.
func (uc *AuthUsecase) CurrentUser(ctx context.Context, userID uuid.UUID) (user.User, error) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, fmt.Errorf("%w: user", ErrNotFound)
		}
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	reconciled, err := uc.completion.Reconcile(ctx, u)
	if err != nil {
		slog.Warn("completion reconcile skipped",
			"component", "auth",
			"user_id", u.ID,
			"error", err)
		reconciled = u
	}

	reconciled.PasswordHash = ""
	return reconciled, nil
}
