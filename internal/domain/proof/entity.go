package proof

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// IsDecision reports whether s is a terminal status an admin may assign.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

type RequestType string

const (
	RequestTypeSkill     RequestType = "SkillVerification"
	RequestTypeEducation RequestType = "EducationVerification"
)

type Proof struct {
	ID              int64
	AccountID       int64
	SkillID         *int64
	EducationID     *int64
	FileURL         string
	FileName        *string
	FileSize        *int64
	MimeType        *string
	Status          Status
	VerifiedBy      *int64
	VerifiedAt      *time.Time
	RejectionReason *string
	ExpiresAt       *time.Time
	CreatedAt       time.Time
}

type VerificationRequest struct {
	ID          int64
	AccountID   int64
	ProofID     int64
	RequestType RequestType
	Status      Status
	ReviewedBy  *int64
	ReviewedAt  *time.Time
	ReviewNotes *string
	CreatedAt   time.Time
}

var (
	ErrNotFound = errors.New("proof not found")
	// ErrAlreadyDecided marks a decision attempt on a proof that already
	// left Pending. Callers treat it as a no-op.
	ErrAlreadyDecided = errors.New("proof already decided")
)
