package dto

import "time"

type PostResponse struct {
	PostID            int64      `json:"post_id"`
	AccountID         int64      `json:"account_id"`
	AuthorName        string     `json:"author_name"`
	SkillID           int64      `json:"skill_id"`
	SkillName         string     `json:"skill_name"`
	PostType          string     `json:"post_type"`
	Title             string     `json:"title"`
	Details           string     `json:"details"`
	Status            string     `json:"status"`
	ContactPreference *string    `json:"contact_preference"`
	ExpiresAt         *time.Time `json:"expires_at"`
	ViewsCount        int        `json:"views_count"`
	CreatedAt         time.Time  `json:"created_at"`
}
