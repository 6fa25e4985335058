package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"careercatalyst/internal/domain/profile"
	"careercatalyst/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	UserType string

	// InitialSkills optionally seeds a Student profile at registration.
	InitialSkills []string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	users    user.Repository
	students profile.StudentRepository
}

func NewService(users user.Repository, students profile.StudentRepository) *Service {
	return &Service{users: users, students: students}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	role, okRole := user.ParseRole(in.UserType)
	if name == "" || email == "" || in.Password == "" || !okRole {
		return user.User{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Skills:       in.InitialSkills,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	// Role profiles are otherwise created lazily on the first profile
	// update; an initial skills payload seeds the Student document now.
	if role == user.RoleStudent && len(in.InitialSkills) > 0 {
		_, err := s.students.Upsert(ctx, profile.Student{
			UserID: u.ID,
			Skills: in.InitialSkills,
		})
		if err != nil {
			// Compensating cleanup: without its profile the half-created
			// account is useless, so roll the user row back.
			if delErr := s.users.Delete(ctx, u.ID); delErr != nil {
				slog.Error("compensating user delete failed",
					"component", "auth",
					"user_id", u.ID,
					"error", delErr)
			}
			return user.User{}, ErrInternal
		}
	}

	return sanitizeUser(u), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
