package repository

import (
	"context"

	"skill-exchange/internal/database"
	"skill-exchange/internal/domain/account"
)

type ContactRepository interface {
	Create(ctx context.Context, c account.Contact) (int64, error)
	FindByAccountID(ctx context.Context, accountID int64, publicOnly bool) ([]account.Contact, error)
}

type PostgresContactRepository struct {
	db database.DB
}

func NewPostgresContactRepository(db database.DB) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

func (r *PostgresContactRepository) Create(ctx context.Context, c account.Contact) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO user_contacts (account_id, contact_type, contact_value, is_public, display_order, created_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 RETURNING contact_id`,
		c.AccountID, c.ContactType, c.ContactValue, c.IsPublic, c.DisplayOrder,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresContactRepository) FindByAccountID(ctx context.Context, accountID int64, publicOnly bool) ([]account.Contact, error) {
	query := `SELECT contact_id, account_id, contact_type, contact_value, is_public, display_order
	 FROM user_contacts
	 WHERE account_id = $1`
	if publicOnly {
		query += ` AND is_public = TRUE`
	}
	query += ` ORDER BY display_order`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]account.Contact, 0)
	for rows.Next() {
		var c account.Contact
		if err := rows.Scan(&c.ID, &c.AccountID, &c.ContactType, &c.ContactValue, &c.IsPublic, &c.DisplayOrder); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
