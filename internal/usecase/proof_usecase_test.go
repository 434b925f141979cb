package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-exchange/internal/domain/proof"
	"skill-exchange/internal/repository"
)

type mockProofRepo struct {
	submittedID int64
	submitErr   error
	lastSubmit  repository.SubmitProofParams
	decideErr   error
	lastDecide  repository.DecideProofParams
	decideCalls int
	items       []proof.Proof
	findErr     error
}

func (m *mockProofRepo) Submit(_ context.Context, p repository.SubmitProofParams) (int64, error) {
	m.lastSubmit = p
	return m.submittedID, m.submitErr
}

func (m *mockProofRepo) Decide(_ context.Context, p repository.DecideProofParams) error {
	m.decideCalls++
	m.lastDecide = p
	return m.decideErr
}

func (m *mockProofRepo) FindByAccountID(context.Context, int64) ([]proof.Proof, error) {
	return m.items, m.findErr
}

func int64Ptr(v int64) *int64 { return &v }

func TestProofSubmit_BothSubjectsSet(t *testing.T) {
	uc := NewProofUsecase(&mockProofRepo{})
	_, err := uc.Submit(context.Background(), 1, SubmitProofInput{
		SkillID:     int64Ptr(2),
		EducationID: int64Ptr(3),
		FileURL:     "https://files.example/cert.pdf",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProofSubmit_NoSubjectSet(t *testing.T) {
	uc := NewProofUsecase(&mockProofRepo{})
	_, err := uc.Submit(context.Background(), 1, SubmitProofInput{FileURL: "https://files.example/cert.pdf"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProofSubmit_EmptyFileURL(t *testing.T) {
	uc := NewProofUsecase(&mockProofRepo{})
	_, err := uc.Submit(context.Background(), 1, SubmitProofInput{SkillID: int64Ptr(2), FileURL: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProofSubmit_SkillProof(t *testing.T) {
	repo := &mockProofRepo{submittedID: 11}
	uc := NewProofUsecase(repo)

	id, err := uc.Submit(context.Background(), 5, SubmitProofInput{
		SkillID: int64Ptr(2),
		FileURL: "https://files.example/cert.pdf",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected proof id 11, got %d", id)
	}
	if repo.lastSubmit.AccountID != 5 || repo.lastSubmit.SkillID == nil || repo.lastSubmit.EducationID != nil {
		t.Fatalf("unexpected submit params: %+v", repo.lastSubmit)
	}
}

func TestProofDecide_InvalidDecision(t *testing.T) {
	uc := NewProofUsecase(&mockProofRepo{})
	err := uc.Decide(context.Background(), DecideProofInput{ProofID: 1, AdminID: 2, Decision: "Pending"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProofDecide_MissingAdmin(t *testing.T) {
	uc := NewProofUsecase(&mockProofRepo{})
	err := uc.Decide(context.Background(), DecideProofInput{ProofID: 1, Decision: "Approved"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProofDecide_AlreadyDecidedIsNoOp(t *testing.T) {
	repo := &mockProofRepo{decideErr: proof.ErrAlreadyDecided}
	uc := NewProofUsecase(repo)

	err := uc.Decide(context.Background(), DecideProofInput{ProofID: 1, AdminID: 2, Decision: "Rejected"})
	if err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}
	if repo.decideCalls != 1 {
		t.Fatalf("expected one decide attempt, got %d", repo.decideCalls)
	}
}

func TestProofDecide_NotFound(t *testing.T) {
	uc := NewProofUsecase(&mockProofRepo{decideErr: proof.ErrNotFound})
	err := uc.Decide(context.Background(), DecideProofInput{ProofID: 404, AdminID: 2, Decision: "Approved"})
	if !errors.Is(err, ErrProofNotFound) {
		t.Fatalf("expected ErrProofNotFound, got %v", err)
	}
}

func TestProofDecide_Success(t *testing.T) {
	repo := &mockProofRepo{}
	uc := NewProofUsecase(repo)

	reason := "illegible scan"
	err := uc.Decide(context.Background(), DecideProofInput{
		ProofID:         3,
		AdminID:         9,
		Decision:        "Rejected",
		RejectionReason: &reason,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastDecide.Decision != proof.StatusRejected || repo.lastDecide.AdminID != 9 {
		t.Fatalf("unexpected decide params: %+v", repo.lastDecide)
	}
	if repo.lastDecide.RejectionReason == nil || *repo.lastDecide.RejectionReason != reason {
		t.Fatalf("rejection reason not forwarded")
	}
}
