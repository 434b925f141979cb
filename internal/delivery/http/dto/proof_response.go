package dto

import "time"

type ProofResponse struct {
	ProofID         int64      `json:"proof_id"`
	AccountID       int64      `json:"account_id"`
	SkillID         *int64     `json:"skill_id"`
	EducationID     *int64     `json:"education_id"`
	FileURL         string     `json:"file_url"`
	FileName        *string    `json:"file_name"`
	FileSize        *int64     `json:"file_size"`
	MimeType        *string    `json:"mime_type"`
	Status          string     `json:"status"`
	VerifiedBy      *int64     `json:"verified_by"`
	VerifiedAt      *time.Time `json:"verified_at"`
	RejectionReason *string    `json:"rejection_reason"`
	ExpiresAt       *time.Time `json:"expires_at"`
	CreatedAt       time.Time  `json:"created_at"`
}
