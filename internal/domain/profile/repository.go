package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Upserts are last-write-wins on the user_id key; there is no optimistic
// concurrency check at the document level.
type StudentRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Student, error)
	Upsert(ctx context.Context, p Student) (Student, error)
}

type FresherRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Fresher, error)
	Upsert(ctx context.Context, p Fresher) (Fresher, error)
	UpdateSavedProfiles(ctx context.Context, userID uuid.UUID, list SavedProfileList) error
}

type ExperiencedRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Experienced, error)
	Upsert(ctx context.Context, p Experienced) (Experienced, error)
}
