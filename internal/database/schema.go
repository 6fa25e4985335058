package database

import "context"

// schemaStatements is applied at startup, in order. Every statement is
// idempotent so repeated boots converge on the same schema.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		is_profile_complete BOOLEAN NOT NULL DEFAULT FALSE,
		skills JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS student_profiles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		skills JSONB NOT NULL DEFAULT '[]',
		education JSONB NOT NULL DEFAULT '{}',
		interests JSONB NOT NULL DEFAULT '[]',
		academic JSONB NOT NULL DEFAULT '{}',
		saved_profiles JSONB NOT NULL DEFAULT '[]',
		learning_progress JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS fresher_profiles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		skills JSONB NOT NULL DEFAULT '[]',
		interested_roles JSONB NOT NULL DEFAULT '[]',
		salary_preference BIGINT,
		work_mode TEXT,
		saved_profiles JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS experienced_profiles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		skills JSONB NOT NULL DEFAULT '[]',
		reason_for_switch TEXT,
		salary_preference BIGINT,
		experience_years INT,
		work_mode TEXT,
		achievements TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func EnsureSchema(ctx context.Context, db DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
