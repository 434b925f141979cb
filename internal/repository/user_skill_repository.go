package repository

import (
	"context"

	"skill-exchange/internal/database"
	"skill-exchange/internal/domain/account"
	"skill-exchange/internal/domain/audit"
	"skill-exchange/internal/domain/skill"
)

type UpsertUserSkillParams struct {
	AccountID       int64
	SkillID         int64
	SkillLevelID    int64
	ExperienceYears *float64
}

type UserSkillRepository interface {
	Upsert(ctx context.Context, p UpsertUserSkillParams) error
	FindByAccountID(ctx context.Context, accountID int64) ([]skill.UserSkill, error)
	SearchUsersBySkill(ctx context.Context, skillName string, minLevelRank *int) ([]account.Profile, error)
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

// Upsert adds the skill or, when the (account, skill) pair already exists,
// updates its level and experience. The verified flag is never touched here;
// only an approved proof sets it.
func (r *PostgresUserSkillRepository) Upsert(ctx context.Context, p UpsertUserSkillParams) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO user_skills (account_id, skill_id, skill_level_id, is_verified, experience_years, created_at)
		 VALUES ($1, $2, $3, FALSE, $4, now())
		 ON CONFLICT (account_id, skill_id)
		 DO UPDATE SET
		     skill_level_id = EXCLUDED.skill_level_id,
		     experience_years = EXCLUDED.experience_years,
		     updated_at = now()`,
		p.AccountID, p.SkillID, p.SkillLevelID, p.ExperienceYears,
	)
	if err != nil {
		return err
	}

	err = insertAuditEntry(ctx, tx, audit.Entry{
		ActorAccountID: &p.AccountID,
		Action:         audit.ActionSkillAdded,
		EntityType:     "UserSkill",
		EntityID:       p.SkillID,
		Details: map[string]any{
			"skill_id":         p.SkillID,
			"skill_level_id":   p.SkillLevelID,
			"experience_years": p.ExperienceYears,
		},
		Result: audit.ResultSuccess,
	})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresUserSkillRepository) FindByAccountID(ctx context.Context, accountID int64) ([]skill.UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.account_id, us.skill_id, sc.skill_name, cat.name, sl.name, sl.rank,
		        us.is_verified, us.experience_years, us.created_at
		 FROM user_skills us
		 JOIN skills_catalog sc ON us.skill_id = sc.skill_id
		 JOIN skill_categories cat ON sc.category_id = cat.category_id
		 JOIN skill_levels sl ON us.skill_level_id = sl.level_id
		 WHERE us.account_id = $1
		 ORDER BY cat.display_order, sc.skill_name`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.UserSkill, 0)
	for rows.Next() {
		var us skill.UserSkill
		err := rows.Scan(&us.AccountID, &us.SkillID, &us.SkillName, &us.CategoryName,
			&us.LevelName, &us.LevelRank, &us.IsVerified, &us.ExperienceYears, &us.AddedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) SearchUsersBySkill(ctx context.Context, skillName string, minLevelRank *int) ([]account.Profile, error) {
	query := `SELECT DISTINCT a.account_id, up.full_name, up.date_of_birth, up.photo_url,
	        up.description, up.last_seen_online, up.is_active, up.created_at, sl.rank
	 FROM accounts a
	 JOIN user_profiles up ON a.account_id = up.account_id
	 JOIN user_skills us ON a.account_id = us.account_id
	 JOIN skills_catalog sc ON us.skill_id = sc.skill_id
	 JOIN skill_levels sl ON us.skill_level_id = sl.level_id
	 WHERE sc.skill_name = $1
	   AND a.deleted_at IS NULL
	   AND up.is_active = TRUE`
	args := []any{skillName}
	if minLevelRank != nil {
		query += ` AND sl.rank >= $2`
		args = append(args, *minLevelRank)
	}
	query += ` ORDER BY sl.rank DESC, up.last_seen_online DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]account.Profile, 0)
	for rows.Next() {
		var p account.Profile
		var rank int
		err := rows.Scan(&p.AccountID, &p.FullName, &p.DateOfBirth, &p.PhotoURL,
			&p.Description, &p.LastSeenOnline, &p.IsActive, &p.CreatedAt, &rank)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
