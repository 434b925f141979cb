package repository

import (
	"context"

	"skill-exchange/internal/database"
	"skill-exchange/internal/domain/education"
)

type CreateEducationParams struct {
	AccountID       int64
	InstitutionName string
	DegreeField     string
	YearStarted     *int
	YearCompleted   *int
	DegreeLevel     *string
	IsCurrent       bool
}

type EducationRepository interface {
	Create(ctx context.Context, p CreateEducationParams) (int64, error)
	FindByAccountID(ctx context.Context, accountID int64) ([]education.Education, error)
}

type PostgresEducationRepository struct {
	db database.DB
}

func NewPostgresEducationRepository(db database.DB) *PostgresEducationRepository {
	return &PostgresEducationRepository{db: db}
}

func (r *PostgresEducationRepository) Create(ctx context.Context, p CreateEducationParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO education (account_id, institution_name, degree_field, year_started, year_completed, degree_level, is_current, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		 RETURNING education_id`,
		p.AccountID, p.InstitutionName, p.DegreeField, p.YearStarted, p.YearCompleted, p.DegreeLevel, p.IsCurrent,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresEducationRepository) FindByAccountID(ctx context.Context, accountID int64) ([]education.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT education_id, account_id, institution_name, degree_field, year_started,
		        year_completed, degree_level, is_current, created_at
		 FROM education
		 WHERE account_id = $1
		 ORDER BY year_completed DESC NULLS LAST, year_started DESC NULLS LAST`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]education.Education, 0)
	for rows.Next() {
		var e education.Education
		err := rows.Scan(&e.ID, &e.AccountID, &e.InstitutionName, &e.DegreeField,
			&e.YearStarted, &e.YearCompleted, &e.DegreeLevel, &e.IsCurrent, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
