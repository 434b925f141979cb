package usecase

import (
	"context"
	"errors"

	"skill-exchange/internal/domain/skill"
	"skill-exchange/internal/repository"
)

var ErrSkillNotFound = errors.New("skill not found")

type AddUserSkillInput struct {
	SkillID         int64
	SkillLevelID    int64
	ExperienceYears *float64
}

type UserSkillUsecase interface {
	AddUserSkill(ctx context.Context, accountID int64, in AddUserSkillInput) error
	ListUserSkills(ctx context.Context, accountID int64) ([]skill.UserSkill, error)
}

type UserSkill struct {
	userSkills repository.UserSkillRepository
	catalog    repository.CatalogRepository
}

func NewUserSkillUsecase(userSkills repository.UserSkillRepository, catalog repository.CatalogRepository) *UserSkill {
	return &UserSkill{userSkills: userSkills, catalog: catalog}
}

// AddUserSkill is an explicit add-or-update: declaring an already-declared
// skill changes level and experience, never duplicates, and never resets the
// verified flag.
func (u *UserSkill) AddUserSkill(ctx context.Context, accountID int64, in AddUserSkillInput) error {
	if accountID <= 0 || in.SkillID <= 0 || in.SkillLevelID <= 0 {
		return ErrInvalidInput
	}
	if in.ExperienceYears != nil && *in.ExperienceYears < 0 {
		return ErrInvalidInput
	}

	exists, err := u.catalog.SkillExistsByID(ctx, in.SkillID)
	if err != nil {
		return internalError(err)
	}
	if !exists {
		return ErrSkillNotFound
	}

	err = u.userSkills.Upsert(ctx, repository.UpsertUserSkillParams{
		AccountID:       accountID,
		SkillID:         in.SkillID,
		SkillLevelID:    in.SkillLevelID,
		ExperienceYears: in.ExperienceYears,
	})
	if err != nil {
		return internalError(err)
	}
	return nil
}

func (u *UserSkill) ListUserSkills(ctx context.Context, accountID int64) ([]skill.UserSkill, error) {
	if accountID <= 0 {
		return nil, ErrInvalidInput
	}
	out, err := u.userSkills.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, internalError(err)
	}
	return out, nil
}
