package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-exchange/internal/domain/account"
	"skill-exchange/internal/domain/skill"
	"skill-exchange/internal/repository"
)

type mockUserSkillRepo struct {
	upsertErr  error
	lastUpsert repository.UpsertUserSkillParams
	items      []skill.UserSkill
	findErr    error
	profiles   []account.Profile
	searchErr  error
}

func (m *mockUserSkillRepo) Upsert(_ context.Context, p repository.UpsertUserSkillParams) error {
	m.lastUpsert = p
	return m.upsertErr
}

func (m *mockUserSkillRepo) FindByAccountID(context.Context, int64) ([]skill.UserSkill, error) {
	return m.items, m.findErr
}

func (m *mockUserSkillRepo) SearchUsersBySkill(context.Context, string, *int) ([]account.Profile, error) {
	return m.profiles, m.searchErr
}

type mockCatalogRepo struct {
	categories []skill.Category
	levels     []skill.Level
	skills     []skill.CatalogSkill
	exists     bool
	existsErr  error
}

func (m *mockCatalogRepo) ListCategories(context.Context) ([]skill.Category, error) {
	return m.categories, nil
}

func (m *mockCatalogRepo) ListLevels(context.Context) ([]skill.Level, error) {
	return m.levels, nil
}

func (m *mockCatalogRepo) ListSkills(context.Context, *int64) ([]skill.CatalogSkill, error) {
	return m.skills, nil
}

func (m *mockCatalogRepo) SkillExistsByID(context.Context, int64) (bool, error) {
	return m.exists, m.existsErr
}

func TestAddUserSkill_UnknownSkill(t *testing.T) {
	uc := NewUserSkillUsecase(&mockUserSkillRepo{}, &mockCatalogRepo{exists: false})
	err := uc.AddUserSkill(context.Background(), 1, AddUserSkillInput{SkillID: 99, SkillLevelID: 2})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestAddUserSkill_NegativeExperience(t *testing.T) {
	years := -1.5
	uc := NewUserSkillUsecase(&mockUserSkillRepo{}, &mockCatalogRepo{exists: true})
	err := uc.AddUserSkill(context.Background(), 1, AddUserSkillInput{SkillID: 2, SkillLevelID: 3, ExperienceYears: &years})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddUserSkill_Success(t *testing.T) {
	years := 2.5
	repo := &mockUserSkillRepo{}
	uc := NewUserSkillUsecase(repo, &mockCatalogRepo{exists: true})

	err := uc.AddUserSkill(context.Background(), 1, AddUserSkillInput{SkillID: 2, SkillLevelID: 3, ExperienceYears: &years})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastUpsert.AccountID != 1 || repo.lastUpsert.SkillID != 2 || repo.lastUpsert.SkillLevelID != 3 {
		t.Fatalf("unexpected upsert params: %+v", repo.lastUpsert)
	}
	if repo.lastUpsert.ExperienceYears == nil || *repo.lastUpsert.ExperienceYears != years {
		t.Fatalf("experience years not forwarded")
	}
}

func TestListUserSkills_InvalidAccount(t *testing.T) {
	uc := NewUserSkillUsecase(&mockUserSkillRepo{}, &mockCatalogRepo{})
	if _, err := uc.ListUserSkills(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSearchUsersBySkill_EmptyName(t *testing.T) {
	uc := NewCatalogUsecase(&mockCatalogRepo{}, &mockUserSkillRepo{})
	if _, err := uc.SearchUsersBySkill(context.Background(), "  ", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSearchUsersBySkill_Success(t *testing.T) {
	name := "Bob"
	uc := NewCatalogUsecase(&mockCatalogRepo{}, &mockUserSkillRepo{profiles: []account.Profile{{AccountID: 2, FullName: &name}}})

	profiles, err := uc.SearchUsersBySkill(context.Background(), "Guitar", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(profiles) != 1 || profiles[0].AccountID != 2 {
		t.Fatalf("unexpected profiles: %+v", profiles)
	}
}
