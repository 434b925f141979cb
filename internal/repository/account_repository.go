package repository

import (
	"context"
	"errors"

	"skill-exchange/internal/database"
	"skill-exchange/internal/domain/account"
	"skill-exchange/internal/domain/audit"

	"github.com/jackc/pgx/v5"
)

type AccountRepository interface {
	Create(ctx context.Context, login, passwordHash string) (int64, error)
	FindCredentialsByLogin(ctx context.Context, login string) (account.Account, error)
	UpdateLastLogin(ctx context.Context, accountID int64) error
	SoftDelete(ctx context.Context, accountID int64) error
}

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// Create inserts the account, its profile and the registration audit row in
// one transaction. A duplicate login surfaces as account.ErrLoginTaken.
func (r *PostgresAccountRepository) Create(ctx context.Context, login, passwordHash string) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	var accountID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO accounts (login, password_hash, email_confirmed, created_at)
		 VALUES ($1, $2, FALSE, now())
		 RETURNING account_id`,
		login, passwordHash,
	).Scan(&accountID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, account.ErrLoginTaken
		}
		return 0, err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO user_profiles (account_id, is_active, created_at)
		 VALUES ($1, TRUE, now())`,
		accountID,
	)
	if err != nil {
		return 0, err
	}

	err = insertAuditEntry(ctx, tx, audit.Entry{
		ActorAccountID: &accountID,
		Action:         audit.ActionUserRegistered,
		EntityType:     "Account",
		EntityID:       accountID,
		Result:         audit.ResultSuccess,
	})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return accountID, nil
}

// FindCredentialsByLogin returns identity and password hash in one lookup so
// callers cannot distinguish unknown logins from bad passwords by timing.
func (r *PostgresAccountRepository) FindCredentialsByLogin(ctx context.Context, login string) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT account_id, login, password_hash, is_admin, email_confirmed, last_login_at, created_at
		 FROM accounts
		 WHERE login = $1 AND deleted_at IS NULL`,
		login,
	)

	var a account.Account
	err := row.Scan(&a.ID, &a.Login, &a.PasswordHash, &a.IsAdmin, &a.EmailConfirmed, &a.LastLoginAt, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}

func (r *PostgresAccountRepository) UpdateLastLogin(ctx context.Context, accountID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE accounts SET last_login_at = now() WHERE account_id = $1`,
		accountID,
	)
	return err
}

// SoftDelete marks the account deleted, deactivates the profile, closes every
// active post and records the deletion, all atomically.
func (r *PostgresAccountRepository) SoftDelete(ctx context.Context, accountID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	affected, err := tx.Exec(ctx,
		`UPDATE accounts SET deleted_at = now(), updated_at = now()
		 WHERE account_id = $1 AND deleted_at IS NULL`,
		accountID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return account.ErrNotFound
	}

	_, err = tx.Exec(ctx,
		`UPDATE user_profiles SET is_active = FALSE, updated_at = now() WHERE account_id = $1`,
		accountID,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE skill_posts
		 SET status = 'Closed', deleted_at = now(), updated_at = now()
		 WHERE account_id = $1 AND status = 'Active' AND deleted_at IS NULL`,
		accountID,
	)
	if err != nil {
		return err
	}

	err = insertAuditEntry(ctx, tx, audit.Entry{
		ActorAccountID: &accountID,
		Action:         audit.ActionAccountDeleted,
		EntityType:     "Account",
		EntityID:       accountID,
		Result:         audit.ResultSuccess,
	})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
