package account

import "time"

type Account struct {
	ID             int64
	Login          string
	PasswordHash   string
	IsAdmin        bool
	EmailConfirmed bool
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	DeletedAt      *time.Time
}

// Identity is the credential-free view returned after authentication.
type Identity struct {
	AccountID int64
	Login     string
	IsAdmin   bool
}

type Profile struct {
	AccountID      int64
	FullName       *string
	DateOfBirth    *time.Time
	PhotoURL       *string
	Description    *string
	LastSeenOnline *time.Time
	IsActive       bool
	CreatedAt      time.Time
}

type Contact struct {
	ID           int64
	AccountID    int64
	ContactType  string
	ContactValue string
	IsPublic     bool
	DisplayOrder int
}
