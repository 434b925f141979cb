package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-exchange/internal/domain/account"
	"skill-exchange/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrLoginTaken      = errors.New("login already taken")
	ErrAccountNotFound = errors.New("account not found")
)

type RegisterInput struct {
	Login    string
	Password string
}

type LoginInput struct {
	Login    string
	Password string
}

type AccountUsecase interface {
	Register(ctx context.Context, in RegisterInput) (int64, error)
	Authenticate(ctx context.Context, in LoginInput) (account.Identity, error)
	SoftDelete(ctx context.Context, accountID int64) error
}

type Account struct {
	accounts repository.AccountRepository
}

func NewAccountUsecase(accounts repository.AccountRepository) *Account {
	return &Account{accounts: accounts}
}

func (u *Account) Register(ctx context.Context, in RegisterInput) (int64, error) {
	login := strings.TrimSpace(in.Login)
	if login == "" {
		return 0, ErrInvalidInput
	}
	if in.Password == "" {
		return 0, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, internalError(err)
	}

	accountID, err := u.accounts.Create(ctx, login, string(hash))
	if err != nil {
		if errors.Is(err, account.ErrLoginTaken) {
			return 0, ErrLoginTaken
		}
		return 0, internalError(err)
	}
	return accountID, nil
}

// Authenticate does a single credentials lookup and answers every failure
// with ErrUnauthorized, so responses never reveal whether the login exists.
func (u *Account) Authenticate(ctx context.Context, in LoginInput) (account.Identity, error) {
	login := strings.TrimSpace(in.Login)
	if login == "" || in.Password == "" {
		return account.Identity{}, ErrUnauthorized
	}

	a, err := u.accounts.FindCredentialsByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Identity{}, ErrUnauthorized
		}
		return account.Identity{}, internalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return account.Identity{}, ErrUnauthorized
	}

	if err := u.accounts.UpdateLastLogin(ctx, a.ID); err != nil {
		return account.Identity{}, internalError(err)
	}

	return account.Identity{AccountID: a.ID, Login: a.Login, IsAdmin: a.IsAdmin}, nil
}

func (u *Account) SoftDelete(ctx context.Context, accountID int64) error {
	if accountID <= 0 {
		return ErrInvalidInput
	}
	if err := u.accounts.SoftDelete(ctx, accountID); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return ErrAccountNotFound
		}
		return internalError(err)
	}
	return nil
}
