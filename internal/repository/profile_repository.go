package repository

import (
	"context"
	"errors"
	"time"

	"skill-exchange/internal/database"
	"skill-exchange/internal/domain/account"

	"github.com/jackc/pgx/v5"
)

type UpdateProfileParams struct {
	FullName    *string
	DateOfBirth *time.Time
	PhotoURL    *string
	Description *string
}

type ProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID int64) (account.Profile, error)
	Update(ctx context.Context, accountID int64, p UpdateProfileParams) error
	TouchLastSeen(ctx context.Context, accountID int64) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByAccountID(ctx context.Context, accountID int64) (account.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT account_id, full_name, date_of_birth, photo_url, description,
		        last_seen_online, is_active, created_at
		 FROM user_profiles
		 WHERE account_id = $1`,
		accountID,
	)

	var p account.Profile
	err := row.Scan(&p.AccountID, &p.FullName, &p.DateOfBirth, &p.PhotoURL,
		&p.Description, &p.LastSeenOnline, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Profile{}, account.ErrNotFound
		}
		return account.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, accountID int64, p UpdateProfileParams) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE user_profiles
		 SET full_name = $2,
		     date_of_birth = $3,
		     photo_url = $4,
		     description = $5,
		     updated_at = now()
		 WHERE account_id = $1`,
		accountID, p.FullName, p.DateOfBirth, p.PhotoURL, p.Description,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return account.ErrNotFound
	}
	return nil
}

func (r *PostgresProfileRepository) TouchLastSeen(ctx context.Context, accountID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE user_profiles SET last_seen_online = now() WHERE account_id = $1`,
		accountID,
	)
	return err
}
