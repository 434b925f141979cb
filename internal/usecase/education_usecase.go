package usecase

import (
	"context"
	"strings"

	"skill-exchange/internal/domain/education"
	"skill-exchange/internal/repository"
)

type CreateEducationInput struct {
	InstitutionName string
	DegreeField     string
	YearStarted     *int
	YearCompleted   *int
	DegreeLevel     *string
	IsCurrent       bool
}

type EducationUsecase interface {
	CreateEducation(ctx context.Context, accountID int64, in CreateEducationInput) (int64, error)
	ListEducation(ctx context.Context, accountID int64) ([]education.Education, error)
}

type Education struct {
	repo repository.EducationRepository
}

func NewEducationUsecase(repo repository.EducationRepository) *Education {
	return &Education{repo: repo}
}

func (u *Education) CreateEducation(ctx context.Context, accountID int64, in CreateEducationInput) (int64, error) {
	if accountID <= 0 {
		return 0, ErrInvalidInput
	}
	if strings.TrimSpace(in.InstitutionName) == "" || strings.TrimSpace(in.DegreeField) == "" {
		return 0, ErrInvalidInput
	}
	if in.YearStarted != nil && in.YearCompleted != nil && *in.YearCompleted < *in.YearStarted {
		return 0, ErrInvalidInput
	}

	id, err := u.repo.Create(ctx, repository.CreateEducationParams{
		AccountID:       accountID,
		InstitutionName: in.InstitutionName,
		DegreeField:     in.DegreeField,
		YearStarted:     in.YearStarted,
		YearCompleted:   in.YearCompleted,
		DegreeLevel:     in.DegreeLevel,
		IsCurrent:       in.IsCurrent,
	})
	if err != nil {
		return 0, internalError(err)
	}
	return id, nil
}

func (u *Education) ListEducation(ctx context.Context, accountID int64) ([]education.Education, error) {
	if accountID <= 0 {
		return nil, ErrInvalidInput
	}
	out, err := u.repo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, internalError(err)
	}
	return out, nil
}
