package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skill-exchange/internal/domain/account"

	"golang.org/x/crypto/bcrypt"
)

type mockAccountRepo struct {
	createdID    int64
	createErr    error
	creds        account.Account
	credsErr     error
	deleteErr    error
	lastLoginIDs []int64
}

func (m *mockAccountRepo) Create(context.Context, string, string) (int64, error) {
	return m.createdID, m.createErr
}

func (m *mockAccountRepo) FindCredentialsByLogin(context.Context, string) (account.Account, error) {
	if m.credsErr != nil {
		return account.Account{}, m.credsErr
	}
	return m.creds, nil
}

func (m *mockAccountRepo) UpdateLastLogin(_ context.Context, accountID int64) error {
	m.lastLoginIDs = append(m.lastLoginIDs, accountID)
	return nil
}

func (m *mockAccountRepo) SoftDelete(context.Context, int64) error {
	return m.deleteErr
}

func TestAccountRegister_EmptyLogin(t *testing.T) {
	uc := NewAccountUsecase(&mockAccountRepo{})
	_, err := uc.Register(context.Background(), RegisterInput{Login: "   ", Password: "long-enough"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAccountRegister_EmptyPassword(t *testing.T) {
	uc := NewAccountUsecase(&mockAccountRepo{})
	_, err := uc.Register(context.Background(), RegisterInput{Login: "alice", Password: ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAccountRegister_ShortPasswordAccepted(t *testing.T) {
	uc := NewAccountUsecase(&mockAccountRepo{createdID: 1})
	id, err := uc.Register(context.Background(), RegisterInput{Login: "alice", Password: "pw123"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}
}

func TestAccountRegister_LoginTaken(t *testing.T) {
	uc := NewAccountUsecase(&mockAccountRepo{createErr: account.ErrLoginTaken})
	_, err := uc.Register(context.Background(), RegisterInput{Login: "alice", Password: "long-enough"})
	if !errors.Is(err, ErrLoginTaken) {
		t.Fatalf("expected ErrLoginTaken, got %v", err)
	}
}

func TestAccountRegister_Success(t *testing.T) {
	uc := NewAccountUsecase(&mockAccountRepo{createdID: 7})
	id, err := uc.Register(context.Background(), RegisterInput{Login: "alice", Password: "long-enough"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
}

func TestAccountAuthenticate_UnknownLogin(t *testing.T) {
	uc := NewAccountUsecase(&mockAccountRepo{credsErr: account.ErrNotFound})
	_, err := uc.Authenticate(context.Background(), LoginInput{Login: "ghost", Password: "whatever1"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAccountAuthenticate_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	uc := NewAccountUsecase(&mockAccountRepo{creds: account.Account{ID: 1, Login: "alice", PasswordHash: string(hash)}})

	_, err = uc.Authenticate(context.Background(), LoginInput{Login: "alice", Password: "wrong-password"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAccountAuthenticate_SameErrorForMissingAndWrong(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	missingUC := NewAccountUsecase(&mockAccountRepo{credsErr: account.ErrNotFound})
	wrongUC := NewAccountUsecase(&mockAccountRepo{creds: account.Account{ID: 1, Login: "alice", PasswordHash: string(hash)}})

	_, missingErr := missingUC.Authenticate(context.Background(), LoginInput{Login: "ghost", Password: "whatever1"})
	_, wrongErr := wrongUC.Authenticate(context.Background(), LoginInput{Login: "alice", Password: "wrong-password"})

	if !errors.Is(missingErr, ErrUnauthorized) || !errors.Is(wrongErr, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for both, got %v and %v", missingErr, wrongErr)
	}
}

func TestAccountAuthenticate_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &mockAccountRepo{creds: account.Account{ID: 42, Login: "alice", PasswordHash: string(hash), IsAdmin: true}}
	uc := NewAccountUsecase(repo)

	identity, err := uc.Authenticate(context.Background(), LoginInput{Login: "alice", Password: "correct-password"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if identity.AccountID != 42 || identity.Login != "alice" || !identity.IsAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if len(repo.lastLoginIDs) != 1 || repo.lastLoginIDs[0] != 42 {
		t.Fatalf("expected last login touch for account 42, got %v", repo.lastLoginIDs)
	}
}

func TestAccountSoftDelete_NotFound(t *testing.T) {
	uc := NewAccountUsecase(&mockAccountRepo{deleteErr: account.ErrNotFound})
	err := uc.SoftDelete(context.Background(), 99)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountSoftDelete_InvalidID(t *testing.T) {
	uc := NewAccountUsecase(&mockAccountRepo{})
	if err := uc.SoftDelete(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAccountRegister_InternalErrorKeepsCause(t *testing.T) {
	uc := NewAccountUsecase(&mockAccountRepo{createErr: errors.New("connection refused")})
	_, err := uc.Register(context.Background(), RegisterInput{Login: "alice", Password: "pw123"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("cause lost from error: %v", err)
	}
}
