package repository

import (
	"context"
	"errors"
	"time"

	"skill-exchange/internal/database"
	"skill-exchange/internal/domain/audit"
	"skill-exchange/internal/domain/proof"

	"github.com/jackc/pgx/v5"
)

type SubmitProofParams struct {
	AccountID   int64
	SkillID     *int64
	EducationID *int64
	FileURL     string
	FileName    *string
	FileSize    *int64
	MimeType    *string
	ExpiresAt   *time.Time
}

type DecideProofParams struct {
	ProofID         int64
	AdminID         int64
	Decision        proof.Status
	RejectionReason *string
	ReviewNotes     *string
}

type ProofRepository interface {
	Submit(ctx context.Context, p SubmitProofParams) (int64, error)
	Decide(ctx context.Context, p DecideProofParams) error
	FindByAccountID(ctx context.Context, accountID int64) ([]proof.Proof, error)
}

type PostgresProofRepository struct {
	db database.DB
}

func NewPostgresProofRepository(db database.DB) *PostgresProofRepository {
	return &PostgresProofRepository{db: db}
}

// Submit creates the proof and its verification request together, both
// Pending. The request type follows from which subject the proof references.
func (r *PostgresProofRepository) Submit(ctx context.Context, p SubmitProofParams) (int64, error) {
	requestType := proof.RequestTypeEducation
	if p.SkillID != nil {
		requestType = proof.RequestTypeSkill
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	var proofID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO proofs (account_id, skill_id, education_id, file_url, file_name, file_size, mime_type, expires_at, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'Pending', now())
		 RETURNING proof_id`,
		p.AccountID, p.SkillID, p.EducationID, p.FileURL, p.FileName, p.FileSize, p.MimeType, p.ExpiresAt,
	).Scan(&proofID)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO verification_requests (account_id, proof_id, request_type, status, created_at)
		 VALUES ($1, $2, $3, 'Pending', now())`,
		p.AccountID, proofID, string(requestType),
	)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return proofID, nil
}

// Decide moves a Pending proof to its terminal status and cascades in one
// transaction: the matching user skill gets its verified flag on approval,
// the verification request follows the proof, and the decision is audited.
// The Pending guard on the proof row makes a repeat decision return
// proof.ErrAlreadyDecided without touching anything.
func (r *PostgresProofRepository) Decide(ctx context.Context, p DecideProofParams) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	var accountID int64
	var skillID *int64
	err = tx.QueryRow(ctx,
		`UPDATE proofs
		 SET status = $2,
		     verified_by = $3,
		     verified_at = now(),
		     rejection_reason = $4,
		     updated_at = now()
		 WHERE proof_id = $1 AND status = 'Pending'
		 RETURNING account_id, skill_id`,
		p.ProofID, string(p.Decision), p.AdminID, p.RejectionReason,
	).Scan(&accountID, &skillID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.classifyMissedDecision(ctx, tx, p.ProofID)
		}
		return err
	}

	if p.Decision == proof.StatusApproved && skillID != nil {
		_, err = tx.Exec(ctx,
			`UPDATE user_skills
			 SET is_verified = TRUE, verified_at = now(), updated_at = now()
			 WHERE account_id = $1 AND skill_id = $2`,
			accountID, *skillID,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE verification_requests
		 SET status = $2,
		     reviewed_by = $3,
		     reviewed_at = now(),
		     review_notes = $4,
		     updated_at = now()
		 WHERE proof_id = $1 AND status = 'Pending'`,
		p.ProofID, string(p.Decision), p.AdminID, p.ReviewNotes,
	)
	if err != nil {
		return err
	}

	err = insertAuditEntry(ctx, tx, audit.Entry{
		ActorAccountID: &p.AdminID,
		Action:         audit.ActionProofVerified,
		EntityType:     "Proof",
		EntityID:       p.ProofID,
		Details: map[string]any{
			"proof_id": p.ProofID,
			"decision": string(p.Decision),
		},
		Result: audit.ResultSuccess,
	})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// classifyMissedDecision distinguishes a missing proof from one that already
// left Pending after the guarded update matched no row.
func (r *PostgresProofRepository) classifyMissedDecision(ctx context.Context, tx database.Tx, proofID int64) error {
	var status string
	err := tx.QueryRow(ctx, `SELECT status FROM proofs WHERE proof_id = $1`, proofID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return proof.ErrNotFound
		}
		return err
	}
	return proof.ErrAlreadyDecided
}

func (r *PostgresProofRepository) FindByAccountID(ctx context.Context, accountID int64) ([]proof.Proof, error) {
	rows, err := r.db.Query(ctx,
		`SELECT proof_id, account_id, skill_id, education_id, file_url, file_name, file_size, mime_type,
		        status, verified_by, verified_at, rejection_reason, expires_at, created_at
		 FROM proofs
		 WHERE account_id = $1
		 ORDER BY created_at DESC`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]proof.Proof, 0)
	for rows.Next() {
		var pr proof.Proof
		var status string
		err := rows.Scan(&pr.ID, &pr.AccountID, &pr.SkillID, &pr.EducationID, &pr.FileURL,
			&pr.FileName, &pr.FileSize, &pr.MimeType, &status, &pr.VerifiedBy,
			&pr.VerifiedAt, &pr.RejectionReason, &pr.ExpiresAt, &pr.CreatedAt)
		if err != nil {
			return nil, err
		}
		pr.Status = proof.Status(status)
		out = append(out, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
