package repository

import (
	"context"
	"encoding/json"
	"errors"

	"skill-exchange/internal/database"
	"skill-exchange/internal/domain/audit"

	"github.com/jackc/pgx/v5/pgconn"
)

// insertAuditEntry appends an audit row inside the caller's transaction so the
// log entry commits or rolls back together with the change it records.
func insertAuditEntry(ctx context.Context, tx database.Tx, e audit.Entry) error {
	var details *string
	if e.Details != nil {
		b, err := json.Marshal(e.Details)
		if err != nil {
			return err
		}
		s := string(b)
		details = &s
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO audit_log (actor_account_id, action, entity_type, entity_id, details, result, created_at)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6, now())`,
		e.ActorAccountID, e.Action, e.EntityType, e.EntityID, details, e.Result,
	)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
