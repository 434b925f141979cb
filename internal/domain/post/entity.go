package post

import (
	"errors"
	"time"
)

type Type string

const (
	TypeOffer   Type = "Offer"
	TypeRequest Type = "Request"
)

func (t Type) Valid() bool {
	return t == TypeOffer || t == TypeRequest
}

type Status string

const (
	StatusActive    Status = "Active"
	StatusClosed    Status = "Closed"
	StatusCancelled Status = "Cancelled"
	StatusExpired   Status = "Expired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusClosed, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// Post is the listing view with author and skill names resolved.
type Post struct {
	ID                int64
	AccountID         int64
	AuthorName        string
	SkillID           int64
	SkillName         string
	PostType          Type
	Title             string
	Details           string
	Status            Status
	ContactPreference *string
	ExpiresAt         *time.Time
	ViewsCount        int
	CreatedAt         time.Time
}

var ErrNotFound = errors.New("post not found")
