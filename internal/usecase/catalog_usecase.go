package usecase

import (
	"context"
	"strings"

	"skill-exchange/internal/domain/account"
	"skill-exchange/internal/domain/skill"
	"skill-exchange/internal/repository"
)

type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]skill.Category, error)
	ListLevels(ctx context.Context) ([]skill.Level, error)
	ListSkills(ctx context.Context, categoryID *int64) ([]skill.CatalogSkill, error)
	SearchUsersBySkill(ctx context.Context, skillName string, minLevelRank *int) ([]account.Profile, error)
}

type Catalog struct {
	catalog    repository.CatalogRepository
	userSkills repository.UserSkillRepository
}

func NewCatalogUsecase(catalog repository.CatalogRepository, userSkills repository.UserSkillRepository) *Catalog {
	return &Catalog{catalog: catalog, userSkills: userSkills}
}

func (u *Catalog) ListCategories(ctx context.Context) ([]skill.Category, error) {
	out, err := u.catalog.ListCategories(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return out, nil
}

func (u *Catalog) ListLevels(ctx context.Context) ([]skill.Level, error) {
	out, err := u.catalog.ListLevels(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return out, nil
}

func (u *Catalog) ListSkills(ctx context.Context, categoryID *int64) ([]skill.CatalogSkill, error) {
	if categoryID != nil && *categoryID <= 0 {
		return nil, ErrInvalidInput
	}
	out, err := u.catalog.ListSkills(ctx, categoryID)
	if err != nil {
		return nil, internalError(err)
	}
	return out, nil
}

func (u *Catalog) SearchUsersBySkill(ctx context.Context, skillName string, minLevelRank *int) ([]account.Profile, error) {
	if strings.TrimSpace(skillName) == "" {
		return nil, ErrInvalidInput
	}
	out, err := u.userSkills.SearchUsersBySkill(ctx, skillName, minLevelRank)
	if err != nil {
		return nil, internalError(err)
	}
	return out, nil
}
