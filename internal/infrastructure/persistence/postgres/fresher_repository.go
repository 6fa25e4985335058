package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"careercatalyst/internal/database"
	"careercatalyst/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FresherRepository struct {
	db database.DB
}

func NewFresherRepository(db database.DB) *FresherRepository {
	return &FresherRepository{db: db}
}

func (r *FresherRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Fresher, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, skills, interested_roles, salary_preference, work_mode, saved_profiles, created_at, updated_at
		 FROM fresher_profiles WHERE user_id = $1`,
		userID,
	)

	var p profile.Fresher
	var skills, roles, saved []byte
	var salary *int64
	var workMode *string
	err := row.Scan(&p.ID, &p.UserID, &skills, &roles, &salary, &workMode, &saved, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Fresher{}, profile.ErrNotFound
		}
		return profile.Fresher{}, err
	}

	if salary != nil {
		p.SalaryPreference = *salary
	}
	if workMode != nil {
		p.WorkMode = profile.WorkMode(*workMode)
	}
	for _, f := range []struct {
		raw []byte
		dst any
	}{
		{skills, &p.Skills},
		{roles, &p.InterestedRoles},
		{saved, &p.SavedProfiles},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return profile.Fresher{}, err
		}
	}
	return p, nil
}

func (r *FresherRepository) Upsert(ctx context.Context, p profile.Fresher) (profile.Fresher, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.SavedProfiles == nil {
		p.SavedProfiles = profile.SavedProfileList{}
	}

	skills, err := json.Marshal(emptyIfNil(p.Skills))
	if err != nil {
		return profile.Fresher{}, err
	}
	roles, err := json.Marshal(emptyIfNil(p.InterestedRoles))
	if err != nil {
		return profile.Fresher{}, err
	}
	saved, err := json.Marshal(p.SavedProfiles)
	if err != nil {
		return profile.Fresher{}, err
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO fresher_profiles (id, user_id, skills, interested_roles, salary_preference, work_mode, saved_profiles)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
			skills = EXCLUDED.skills,
			interested_roles = EXCLUDED.interested_roles,
			salary_preference = EXCLUDED.salary_preference,
			work_mode = EXCLUDED.work_mode,
			updated_at = now()`,
		p.ID, p.UserID, skills, roles, p.SalaryPreference, string(p.WorkMode), saved,
	)
	if err != nil {
		return profile.Fresher{}, err
	}
	return r.GetByUserID(ctx, p.UserID)
}

// UpdateSavedProfiles replaces the saved list wholesale; ordering is the
// caller's insertion order.
func (r *FresherRepository) UpdateSavedProfiles(ctx context.Context, userID uuid.UUID, list profile.SavedProfileList) error {
	if list == nil {
		list = profile.SavedProfileList{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(
		ctx,
		`UPDATE fresher_profiles SET saved_profiles = $2, updated_at = now() WHERE user_id = $1`,
		userID, b,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return profile.ErrNotFound
	}
	return nil
}
