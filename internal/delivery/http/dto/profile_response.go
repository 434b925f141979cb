package dto

import "time"

type ProfileResponse struct {
	AccountID      int64      `json:"account_id"`
	FullName       *string    `json:"full_name"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	PhotoURL       *string    `json:"photo_url"`
	Description    *string    `json:"description"`
	LastSeenOnline *time.Time `json:"last_seen_online"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ContactResponse struct {
	ContactID    int64  `json:"contact_id"`
	AccountID    int64  `json:"account_id"`
	ContactType  string `json:"contact_type"`
	ContactValue string `json:"contact_value"`
	IsPublic     bool   `json:"is_public"`
	DisplayOrder int    `json:"display_order"`
}
