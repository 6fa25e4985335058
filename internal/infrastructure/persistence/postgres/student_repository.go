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

type StudentRepository struct {
	db database.DB
}

func NewStudentRepository(db database.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Student, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, skills, education, interests, academic, saved_profiles, learning_progress, created_at, updated_at
		 FROM student_profiles WHERE user_id = $1`,
		userID,
	)

	var p profile.Student
	var skills, education, interests, academic, saved, progress []byte
	err := row.Scan(&p.ID, &p.UserID, &skills, &education, &interests, &academic, &saved, &progress, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Student{}, profile.ErrNotFound
		}
		return profile.Student{}, err
	}

	for _, f := range []struct {
		raw []byte
		dst any
	}{
		{skills, &p.Skills},
		{education, &p.Education},
		{interests, &p.Interests},
		{academic, &p.Academic},
		{saved, &p.SavedProfiles},
		{progress, &p.LearningProgress},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return profile.Student{}, err
		}
	}
	return p, nil
}

func (r *StudentRepository) Upsert(ctx context.Context, p profile.Student) (profile.Student, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.SavedProfiles == nil {
		p.SavedProfiles = profile.SavedProfileList{}
	}
	if p.LearningProgress == nil {
		p.LearningProgress = []profile.LearningProgress{}
	}

	skills, err := json.Marshal(emptyIfNil(p.Skills))
	if err != nil {
		return profile.Student{}, err
	}
	education, err := json.Marshal(p.Education)
	if err != nil {
		return profile.Student{}, err
	}
	interests, err := json.Marshal(emptyIfNil(p.Interests))
	if err != nil {
		return profile.Student{}, err
	}
	academic, err := json.Marshal(p.Academic)
	if err != nil {
		return profile.Student{}, err
	}
	saved, err := json.Marshal(p.SavedProfiles)
	if err != nil {
		return profile.Student{}, err
	}
	progress, err := json.Marshal(p.LearningProgress)
	if err != nil {
		return profile.Student{}, err
	}

	// saved_profiles stays out of the update set so profile writes never
	// clobber a previously saved list.
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO student_profiles (id, user_id, skills, education, interests, academic, saved_profiles, learning_progress)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
			skills = EXCLUDED.skills,
			education = EXCLUDED.education,
			interests = EXCLUDED.interests,
			academic = EXCLUDED.academic,
			learning_progress = EXCLUDED.learning_progress,
			updated_at = now()`,
		p.ID, p.UserID, skills, education, interests, academic, saved, progress,
	)
	if err != nil {
		return profile.Student{}, err
	}
	return r.GetByUserID(ctx, p.UserID)
}
