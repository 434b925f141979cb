package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-exchange/internal/domain/education"
	"skill-exchange/internal/repository"
)

type mockEducationRepo struct {
	createdID  int64
	createErr  error
	lastCreate repository.CreateEducationParams
	items      []education.Education
	findErr    error
}

func (m *mockEducationRepo) Create(_ context.Context, p repository.CreateEducationParams) (int64, error) {
	m.lastCreate = p
	return m.createdID, m.createErr
}

func (m *mockEducationRepo) FindByAccountID(context.Context, int64) ([]education.Education, error) {
	return m.items, m.findErr
}

func intPtr(v int) *int { return &v }

func TestCreateEducation_EmptyInstitution(t *testing.T) {
	uc := NewEducationUsecase(&mockEducationRepo{})
	_, err := uc.CreateEducation(context.Background(), 1, CreateEducationInput{DegreeField: "CS"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateEducation_CompletedBeforeStarted(t *testing.T) {
	uc := NewEducationUsecase(&mockEducationRepo{})
	_, err := uc.CreateEducation(context.Background(), 1, CreateEducationInput{
		InstitutionName: "State University",
		DegreeField:     "CS",
		YearStarted:     intPtr(2020),
		YearCompleted:   intPtr(2018),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateEducation_Success(t *testing.T) {
	repo := &mockEducationRepo{createdID: 8}
	uc := NewEducationUsecase(repo)

	id, err := uc.CreateEducation(context.Background(), 1, CreateEducationInput{
		InstitutionName: "State University",
		DegreeField:     "CS",
		YearStarted:     intPtr(2018),
		YearCompleted:   intPtr(2022),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 8 {
		t.Fatalf("expected id 8, got %d", id)
	}
	if repo.lastCreate.AccountID != 1 || repo.lastCreate.InstitutionName != "State University" {
		t.Fatalf("unexpected create params: %+v", repo.lastCreate)
	}
}
