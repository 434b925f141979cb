package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-exchange/internal/domain/account"
	"skill-exchange/internal/repository"
)

type mockProfileRepo struct {
	profile    account.Profile
	findErr    error
	updateErr  error
	touchedIDs []int64
}

func (m *mockProfileRepo) FindByAccountID(context.Context, int64) (account.Profile, error) {
	if m.findErr != nil {
		return account.Profile{}, m.findErr
	}
	return m.profile, nil
}

func (m *mockProfileRepo) Update(context.Context, int64, repository.UpdateProfileParams) error {
	return m.updateErr
}

func (m *mockProfileRepo) TouchLastSeen(_ context.Context, accountID int64) error {
	m.touchedIDs = append(m.touchedIDs, accountID)
	return nil
}

type mockContactRepo struct {
	createdID int64
	createErr error
	items     []account.Contact
	findErr   error
}

func (m *mockContactRepo) Create(context.Context, account.Contact) (int64, error) {
	return m.createdID, m.createErr
}

func (m *mockContactRepo) FindByAccountID(context.Context, int64, bool) ([]account.Contact, error) {
	return m.items, m.findErr
}

func TestGetProfile_NotFound(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileRepo{findErr: account.ErrNotFound}, &mockContactRepo{})
	_, err := uc.GetProfile(context.Background(), 9)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestUpdateProfile_TouchesLastSeen(t *testing.T) {
	repo := &mockProfileRepo{}
	uc := NewProfileUsecase(repo, &mockContactRepo{})

	name := "Alice"
	if err := uc.UpdateProfile(context.Background(), 4, UpdateProfileInput{FullName: &name}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.touchedIDs) != 1 || repo.touchedIDs[0] != 4 {
		t.Fatalf("expected last seen touch for account 4, got %v", repo.touchedIDs)
	}
}

func TestCreateContact_EmptyValue(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileRepo{}, &mockContactRepo{})
	_, err := uc.CreateContact(context.Background(), 1, CreateContactInput{ContactType: "telegram"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateContact_Success(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileRepo{}, &mockContactRepo{createdID: 12})
	id, err := uc.CreateContact(context.Background(), 1, CreateContactInput{ContactType: "telegram", ContactValue: "@alice"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 12 {
		t.Fatalf("expected contact id 12, got %d", id)
	}
}
