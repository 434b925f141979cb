package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skill-exchange/internal/domain/account"
	"skill-exchange/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

type UpdateProfileInput struct {
	FullName    *string
	DateOfBirth *time.Time
	PhotoURL    *string
	Description *string
}

type CreateContactInput struct {
	ContactType  string
	ContactValue string
	IsPublic     bool
	DisplayOrder int
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, accountID int64) (account.Profile, error)
	UpdateProfile(ctx context.Context, accountID int64, in UpdateProfileInput) error
	CreateContact(ctx context.Context, accountID int64, in CreateContactInput) (int64, error)
	ListContacts(ctx context.Context, accountID int64, publicOnly bool) ([]account.Contact, error)
}

type Profile struct {
	profiles repository.ProfileRepository
	contacts repository.ContactRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository, contacts repository.ContactRepository) *Profile {
	return &Profile{profiles: profiles, contacts: contacts}
}

func (u *Profile) GetProfile(ctx context.Context, accountID int64) (account.Profile, error) {
	if accountID <= 0 {
		return account.Profile{}, ErrInvalidInput
	}
	p, err := u.profiles.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Profile{}, ErrProfileNotFound
		}
		return account.Profile{}, internalError(err)
	}
	return p, nil
}

// UpdateProfile writes the new fields and touches last_seen_online, matching
// the behavior of an authenticated user editing their own page.
func (u *Profile) UpdateProfile(ctx context.Context, accountID int64, in UpdateProfileInput) error {
	if accountID <= 0 {
		return ErrInvalidInput
	}

	err := u.profiles.Update(ctx, accountID, repository.UpdateProfileParams{
		FullName:    in.FullName,
		DateOfBirth: in.DateOfBirth,
		PhotoURL:    in.PhotoURL,
		Description: in.Description,
	})
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return ErrProfileNotFound
		}
		return internalError(err)
	}

	if err := u.profiles.TouchLastSeen(ctx, accountID); err != nil {
		return internalError(err)
	}
	return nil
}

func (u *Profile) CreateContact(ctx context.Context, accountID int64, in CreateContactInput) (int64, error) {
	if accountID <= 0 {
		return 0, ErrInvalidInput
	}
	if strings.TrimSpace(in.ContactType) == "" || strings.TrimSpace(in.ContactValue) == "" {
		return 0, ErrInvalidInput
	}

	id, err := u.contacts.Create(ctx, account.Contact{
		AccountID:    accountID,
		ContactType:  in.ContactType,
		ContactValue: in.ContactValue,
		IsPublic:     in.IsPublic,
		DisplayOrder: in.DisplayOrder,
	})
	if err != nil {
		return 0, internalError(err)
	}
	return id, nil
}

func (u *Profile) ListContacts(ctx context.Context, accountID int64, publicOnly bool) ([]account.Contact, error) {
	if accountID <= 0 {
		return nil, ErrInvalidInput
	}
	out, err := u.contacts.FindByAccountID(ctx, accountID, publicOnly)
	if err != nil {
		return nil, internalError(err)
	}
	return out, nil
}
