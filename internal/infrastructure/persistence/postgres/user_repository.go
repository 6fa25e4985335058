package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"careercatalyst/internal/database"
	"careercatalyst/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	skills, err := json.Marshal(emptyIfNil(u.Skills))
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO users (id, name, email, password_hash, role, is_profile_complete, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.IsProfileComplete, skills,
	)
	if isUniqueViolation(err) {
		return user.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, email, password_hash, role, is_profile_complete, skills, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, email, password_hash, role, is_profile_complete, skills, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) UpdateSkills(ctx context.Context, id uuid.UUID, skills []string, complete bool) error {
	b, err := json.Marshal(emptyIfNil(skills))
	if err != nil {
		return err
	}
	n, err := r.db.Exec(
		ctx,
		`UPDATE users SET skills = $2, is_profile_complete = $3, updated_at = now() WHERE id = $1`,
		id, b, complete,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetProfileComplete(ctx context.Context, id uuid.UUID, complete bool) error {
	n, err := r.db.Exec(
		ctx,
		`UPDATE users SET is_profile_complete = $2, updated_at = now() WHERE id = $1`,
		id, complete,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var (
		u      user.User
		role   string
		skills []byte
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.IsProfileComplete, &skills, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &u.Skills); err != nil {
			return user.User{}, err
		}
	}
	return u, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	// Pool wrappers used in tests surface plain errors.
	return strings.Contains(err.Error(), "duplicate key")
}
