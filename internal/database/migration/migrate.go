package migration

import (
	"context"
	"fmt"

	"skill-exchange/internal/database"
)

// schemaLockKey serializes concurrent schema bootstrap across instances.
const schemaLockKey = 824471903

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		account_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		login TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		email_confirmed BOOLEAN NOT NULL DEFAULT FALSE,
		last_login_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		account_id BIGINT PRIMARY KEY REFERENCES accounts(account_id),
		full_name TEXT,
		date_of_birth DATE,
		photo_url TEXT,
		description TEXT,
		last_seen_online TIMESTAMPTZ,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS user_contacts (
		contact_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts(account_id),
		contact_type TEXT NOT NULL,
		contact_value TEXT NOT NULL,
		is_public BOOLEAN NOT NULL DEFAULT FALSE,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS skill_categories (
		category_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		icon_url TEXT,
		display_order INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS skill_levels (
		level_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		rank INT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS skills_catalog (
		skill_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		skill_name TEXT NOT NULL UNIQUE,
		category_id BIGINT NOT NULL REFERENCES skill_categories(category_id),
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS user_skills (
		account_id BIGINT NOT NULL REFERENCES accounts(account_id),
		skill_id BIGINT NOT NULL REFERENCES skills_catalog(skill_id),
		skill_level_id BIGINT NOT NULL REFERENCES skill_levels(level_id),
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		verified_at TIMESTAMPTZ,
		experience_years NUMERIC(4,1),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ,
		PRIMARY KEY (account_id, skill_id)
	)`,
	`CREATE TABLE IF NOT EXISTS education (
		education_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts(account_id),
		institution_name TEXT NOT NULL,
		degree_field TEXT NOT NULL,
		year_started INT,
		year_completed INT,
		degree_level TEXT,
		is_current BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS proofs (
		proof_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts(account_id),
		skill_id BIGINT REFERENCES skills_catalog(skill_id),
		education_id BIGINT REFERENCES education(education_id),
		file_url TEXT NOT NULL,
		file_name TEXT,
		file_size BIGINT,
		mime_type TEXT,
		status TEXT NOT NULL DEFAULT 'Pending',
		verified_by BIGINT,
		verified_at TIMESTAMPTZ,
		rejection_reason TEXT,
		expires_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ,
		CONSTRAINT proofs_subject CHECK ((skill_id IS NULL) <> (education_id IS NULL))
	)`,
	`CREATE TABLE IF NOT EXISTS verification_requests (
		request_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts(account_id),
		proof_id BIGINT NOT NULL REFERENCES proofs(proof_id),
		request_type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending',
		reviewed_by BIGINT,
		reviewed_at TIMESTAMPTZ,
		review_notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS skill_posts (
		post_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts(account_id),
		skill_id BIGINT NOT NULL REFERENCES skills_catalog(skill_id),
		post_type TEXT NOT NULL,
		title TEXT NOT NULL,
		details TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Active',
		contact_preference TEXT,
		expires_at TIMESTAMPTZ,
		views_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ,
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		entry_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		actor_account_id BIGINT,
		action TEXT NOT NULL,
		entity_type TEXT NOT NULL,
		entity_id BIGINT NOT NULL,
		details JSONB,
		result TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_skill_posts_listing
		ON skill_posts (skill_id, post_type, status) WHERE deleted_at IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_proofs_account ON proofs (account_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_verification_requests_proof ON verification_requests (proof_id)`,
}

// Run creates any missing tables and seeds reference data. Safe to run on
// every startup. Everything happens in one transaction: the xact-scoped
// advisory lock stays on that session and is released at commit or rollback,
// so concurrent instances serialize their bootstrap.
func Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, schemaLockKey); err != nil {
		return err
	}

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}

	if err := seedReferenceData(ctx, tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

type categorySeed struct {
	name         string
	description  string
	displayOrder int
}

type levelSeed struct {
	name        string
	rank        int
	description string
}

type skillSeed struct {
	name     string
	category string
}

var defaultCategories = []categorySeed{
	{"Technology", "Programming, IT and digital skills", 1},
	{"Languages", "Spoken and written languages", 2},
	{"Arts & Crafts", "Creative and hands-on skills", 3},
	{"Music", "Instruments, theory and production", 4},
	{"Academics", "Sciences, math and tutoring", 5},
	{"Lifestyle", "Cooking, fitness and everyday skills", 6},
}

var defaultLevels = []levelSeed{
	{"Beginner", 1, "Just getting started"},
	{"Intermediate", 2, "Comfortable with the basics"},
	{"Advanced", 3, "Deep practical experience"},
	{"Expert", 4, "Can teach at a professional level"},
}

var defaultSkills = []skillSeed{
	{"Go", "Technology"},
	{"Python", "Technology"},
	{"Web Development", "Technology"},
	{"English", "Languages"},
	{"Spanish", "Languages"},
	{"Drawing", "Arts & Crafts"},
	{"Photography", "Arts & Crafts"},
	{"Guitar", "Music"},
	{"Piano", "Music"},
	{"Mathematics", "Academics"},
	{"Physics", "Academics"},
	{"Cooking", "Lifestyle"},
	{"Fitness Training", "Lifestyle"},
}

func seedReferenceData(ctx context.Context, tx database.Tx) error {
	for _, c := range defaultCategories {
		_, err := tx.Exec(ctx,
			`INSERT INTO skill_categories (name, description, display_order, is_active)
			 VALUES ($1, $2, $3, TRUE)
			 ON CONFLICT (name) DO NOTHING`,
			c.name, c.description, c.displayOrder,
		)
		if err != nil {
			return err
		}
	}

	for _, l := range defaultLevels {
		_, err := tx.Exec(ctx,
			`INSERT INTO skill_levels (name, rank, description)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			l.name, l.rank, l.description,
		)
		if err != nil {
			return err
		}
	}

	for _, s := range defaultSkills {
		_, err := tx.Exec(ctx,
			`INSERT INTO skills_catalog (skill_name, category_id, is_active)
			 SELECT $1, category_id, TRUE FROM skill_categories WHERE name = $2
			 ON CONFLICT (skill_name) DO NOTHING`,
			s.name, s.category,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
