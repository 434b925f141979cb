package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skill-exchange/internal/domain/proof"
	"skill-exchange/internal/repository"
)

var ErrProofNotFound = errors.New("proof not found")

type SubmitProofInput struct {
	SkillID     *int64
	EducationID *int64
	FileURL     string
	FileName    *string
	FileSize    *int64
	MimeType    *string
	ExpiresAt   *time.Time
}

type DecideProofInput struct {
	ProofID         int64
	AdminID         int64
	Decision        string
	RejectionReason *string
	ReviewNotes     *string
}

type ProofUsecase interface {
	Submit(ctx context.Context, accountID int64, in SubmitProofInput) (int64, error)
	Decide(ctx context.Context, in DecideProofInput) error
	ListProofs(ctx context.Context, accountID int64) ([]proof.Proof, error)
}

type Proof struct {
	proofs repository.ProofRepository
}

func NewProofUsecase(proofs repository.ProofRepository) *Proof {
	return &Proof{proofs: proofs}
}

// Submit creates a Pending proof with its verification request. A proof
// backs exactly one claim, so precisely one of skill or education must be
// referenced.
func (u *Proof) Submit(ctx context.Context, accountID int64, in SubmitProofInput) (int64, error) {
	if accountID <= 0 {
		return 0, ErrInvalidInput
	}
	if (in.SkillID == nil) == (in.EducationID == nil) {
		return 0, ErrInvalidInput
	}
	if in.SkillID != nil && *in.SkillID <= 0 {
		return 0, ErrInvalidInput
	}
	if in.EducationID != nil && *in.EducationID <= 0 {
		return 0, ErrInvalidInput
	}
	if strings.TrimSpace(in.FileURL) == "" {
		return 0, ErrInvalidInput
	}

	id, err := u.proofs.Submit(ctx, repository.SubmitProofParams{
		AccountID:   accountID,
		SkillID:     in.SkillID,
		EducationID: in.EducationID,
		FileURL:     in.FileURL,
		FileName:    in.FileName,
		FileSize:    in.FileSize,
		MimeType:    in.MimeType,
		ExpiresAt:   in.ExpiresAt,
	})
	if err != nil {
		return 0, internalError(err)
	}
	return id, nil
}

// Decide applies an admin decision. Deciding an already-decided proof is a
// no-op success; the first decision is the one that sticks.
func (u *Proof) Decide(ctx context.Context, in DecideProofInput) error {
	if in.ProofID <= 0 {
		return ErrInvalidInput
	}
	if in.AdminID <= 0 {
		return ErrUnauthorized
	}
	decision := proof.Status(in.Decision)
	if !decision.IsDecision() {
		return ErrInvalidInput
	}

	err := u.proofs.Decide(ctx, repository.DecideProofParams{
		ProofID:         in.ProofID,
		AdminID:         in.AdminID,
		Decision:        decision,
		RejectionReason: in.RejectionReason,
		ReviewNotes:     in.ReviewNotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, proof.ErrAlreadyDecided):
			return nil
		case errors.Is(err, proof.ErrNotFound):
			return ErrProofNotFound
		default:
			return internalError(err)
		}
	}
	return nil
}

func (u *Proof) ListProofs(ctx context.Context, accountID int64) ([]proof.Proof, error) {
	if accountID <= 0 {
		return nil, ErrInvalidInput
	}
	out, err := u.proofs.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, internalError(err)
	}
	return out, nil
}
