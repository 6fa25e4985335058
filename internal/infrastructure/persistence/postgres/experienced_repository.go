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

type ExperiencedRepository struct {
	db database.DB
}

func NewExperiencedRepository(db database.DB) *ExperiencedRepository {
	return &ExperiencedRepository{db: db}
}

func (r *ExperiencedRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Experienced, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, skills, reason_for_switch, salary_preference, experience_years, work_mode, achievements, created_at, updated_at
		 FROM experienced_profiles WHERE user_id = $1`,
		userID,
	)

	var p profile.Experienced
	var skills []byte
	var reason, workMode, achievements *string
	var salary *int64
	var years *int
	err := row.Scan(&p.ID, &p.UserID, &skills, &reason, &salary, &years, &workMode, &achievements, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Experienced{}, profile.ErrNotFound
		}
		return profile.Experienced{}, err
	}

	if reason != nil {
		p.ReasonForSwitch = *reason
	}
	if salary != nil {
		p.SalaryPreference = *salary
	}
	if years != nil {
		p.ExperienceYears = *years
	}
	if workMode != nil {
		p.WorkMode = profile.WorkMode(*workMode)
	}
	if achievements != nil {
		p.Achievements = *achievements
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &p.Skills); err != nil {
			return profile.Experienced{}, err
		}
	}
	return p, nil
}

func (r *ExperiencedRepository) Upsert(ctx context.Context, p profile.Experienced) (profile.Experienced, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	skills, err := json.Marshal(emptyIfNil(p.Skills))
	if err != nil {
		return profile.Experienced{}, err
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO experienced_profiles (id, user_id, skills, reason_for_switch, salary_preference, experience_years, work_mode, achievements)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
			skills = EXCLUDED.skills,
			reason_for_switch = EXCLUDED.reason_for_switch,
			salary_preference = EXCLUDED.salary_preference,
			experience_years = EXCLUDED.experience_years,
			work_mode = EXCLUDED.work_mode,
			achievements = EXCLUDED.achievements,
			updated_at = now()`,
		p.ID, p.UserID, skills, p.ReasonForSwitch, p.SalaryPreference, p.ExperienceYears, string(p.WorkMode), p.Achievements,
	)
	if err != nil {
		return profile.Experienced{}, err
	}
	return r.GetByUserID(ctx, p.UserID)
}
