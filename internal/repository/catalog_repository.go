package repository

import (
	"context"

	"skill-exchange/internal/database"
	"skill-exchange/internal/domain/skill"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]skill.Category, error)
	ListLevels(ctx context.Context) ([]skill.Level, error)
	ListSkills(ctx context.Context, categoryID *int64) ([]skill.CatalogSkill, error)
	SkillExistsByID(ctx context.Context, skillID int64) (bool, error)
}

type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListCategories(ctx context.Context) ([]skill.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT category_id, name, description, icon_url, display_order, is_active
		 FROM skill_categories
		 WHERE is_active = TRUE
		 ORDER BY display_order`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Category, 0)
	for rows.Next() {
		var c skill.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IconURL, &c.DisplayOrder, &c.IsActive); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) ListLevels(ctx context.Context) ([]skill.Level, error) {
	rows, err := r.db.Query(ctx,
		`SELECT level_id, name, rank, description
		 FROM skill_levels
		 ORDER BY rank`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Level, 0)
	for rows.Next() {
		var l skill.Level
		if err := rows.Scan(&l.ID, &l.Name, &l.Rank, &l.Description); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) ListSkills(ctx context.Context, categoryID *int64) ([]skill.CatalogSkill, error) {
	query := `SELECT skill_id, skill_name, category_id, description, is_active
	 FROM skills_catalog
	 WHERE is_active = TRUE`
	args := []any{}
	if categoryID != nil {
		query += ` AND category_id = $1`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY skill_name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.CatalogSkill, 0)
	for rows.Next() {
		var s skill.CatalogSkill
		if err := rows.Scan(&s.ID, &s.Name, &s.CategoryID, &s.Description, &s.IsActive); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) SkillExistsByID(ctx context.Context, skillID int64) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills_catalog WHERE skill_id = $1)`, skillID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
