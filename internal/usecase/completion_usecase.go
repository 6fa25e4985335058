package usecase

import (
	"context"
	"errors"
	"fmt"

	"careercatalyst/internal/domain/profile"
	"careercatalyst/internal/domain/user"
)

// CompletionUsecase derives the profile-completion flag from the role
// profile store and repairs the stored flag when it drifts.
type CompletionUsecase struct {
	users       user.Repository
	students    profile.StudentRepository
	freshers    profile.FresherRepository
	experienced profile.ExperiencedRepository
}

func NewCompletionUsecase(
	users user.Repository,
	students profile.StudentRepository,
	freshers profile.FresherRepository,
	experienced profile.ExperiencedRepository,
) *CompletionUsecase {
	return &CompletionUsecase{
		users:       users,
		students:    students,
		freshers:    freshers,
		experienced: experienced,
	}
}

// Evaluate computes completion from the role profile document alone. A
// missing document is a valid state, not an error.
func (uc *CompletionUsecase) Evaluate(ctx context.Context, u user.User) (bool, error) {
	var in profile.CompletionInput

	switch u.Role {
	case user.RoleStudent:
		p, err := uc.students.GetByUserID(ctx, u.ID)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("evaluate completion: %w", err)
		}
		in.Student = &p
	case user.RoleFresher:
		p, err := uc.freshers.GetByUserID(ctx, u.ID)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("evaluate completion: %w", err)
		}
		in.Fresher = &p
	case user.RoleExperienced:
		p, err := uc.experienced.GetByUserID(ctx, u.ID)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("evaluate completion: %w", err)
		}
		in.Experienced = &p
	default:
		return false, nil
	}

	return profile.IsComplete(u.Role, in), nil
}

// Reconcile recomputes the flag and persists it when it differs from the
// stored value. On evaluator failure the stored user is returned untouched
// along with the error so callers can decide whether to degrade.
func (uc *CompletionUsecase) Reconcile(ctx context.Context, u user.User) (user.User, error) {
	complete, err := uc.Evaluate(ctx, u)
	if err != nil {
		return u, err
	}
	if complete == u.IsProfileComplete {
		return u, nil
	}

	if err := uc.users.SetProfileComplete(ctx, u.ID, complete); err != nil {
		return u, fmt.Errorf("reconcile completion: %w", err)
	}
	u.IsProfileComplete = complete
	return u, nil
}
