package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-exchange/internal/domain/post"
	"skill-exchange/internal/repository"
)

type mockPostRepo struct {
	createdID  int64
	createErr  error
	lastCreate repository.CreatePostParams
	items      []post.Post
	listErr    error
	lastFilter repository.PostFilter
	found      post.Post
	findErr    error
	incrErr    error
	incrCalls  int
	statusErr  error
	lastStatus post.Status
}

func (m *mockPostRepo) Create(_ context.Context, p repository.CreatePostParams) (int64, error) {
	m.lastCreate = p
	return m.createdID, m.createErr
}

func (m *mockPostRepo) List(_ context.Context, f repository.PostFilter) ([]post.Post, error) {
	m.lastFilter = f
	return m.items, m.listErr
}

func (m *mockPostRepo) FindByID(context.Context, int64) (post.Post, error) {
	if m.findErr != nil {
		return post.Post{}, m.findErr
	}
	return m.found, nil
}

func (m *mockPostRepo) IncrementViews(context.Context, int64) error {
	m.incrCalls++
	return m.incrErr
}

func (m *mockPostRepo) UpdateStatus(_ context.Context, _ int64, status post.Status) error {
	m.lastStatus = status
	return m.statusErr
}

func TestCreatePost_InvalidType(t *testing.T) {
	uc := NewPostUsecase(&mockPostRepo{})
	_, err := uc.CreatePost(context.Background(), 1, CreatePostInput{
		SkillID:  2,
		PostType: "Trade",
		Title:    "Guitar lessons",
		Details:  "Weekly sessions",
	})
	if !errors.Is(err, ErrInvalidPostType) {
		t.Fatalf("expected ErrInvalidPostType, got %v", err)
	}
}

func TestCreatePost_Success(t *testing.T) {
	repo := &mockPostRepo{createdID: 31}
	uc := NewPostUsecase(repo)

	id, err := uc.CreatePost(context.Background(), 1, CreatePostInput{
		SkillID:  2,
		PostType: "Offer",
		Title:    "Guitar lessons",
		Details:  "Weekly sessions",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id != 31 {
		t.Fatalf("expected post id 31, got %d", id)
	}
	if repo.lastCreate.PostType != post.TypeOffer {
		t.Fatalf("unexpected post type: %v", repo.lastCreate.PostType)
	}
}

func TestListPosts_DefaultStatusIsActive(t *testing.T) {
	repo := &mockPostRepo{}
	uc := NewPostUsecase(repo)

	if _, err := uc.ListPosts(context.Background(), ListPostsInput{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.Status == nil || *repo.lastFilter.Status != post.StatusActive {
		t.Fatalf("expected Active status filter, got %v", repo.lastFilter.Status)
	}
}

func TestListPosts_AllSentinelLiftsStatusFilter(t *testing.T) {
	repo := &mockPostRepo{}
	uc := NewPostUsecase(repo)

	if _, err := uc.ListPosts(context.Background(), ListPostsInput{Status: PostStatusAll}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.Status != nil {
		t.Fatalf("expected no status filter, got %v", *repo.lastFilter.Status)
	}
}

func TestListPosts_UnknownStatusRejected(t *testing.T) {
	uc := NewPostUsecase(&mockPostRepo{})
	_, err := uc.ListPosts(context.Background(), ListPostsInput{Status: "Archived"})
	if !errors.Is(err, ErrInvalidPostStatus) {
		t.Fatalf("expected ErrInvalidPostStatus, got %v", err)
	}
}

func TestListPosts_UnknownTypeRejected(t *testing.T) {
	uc := NewPostUsecase(&mockPostRepo{})
	_, err := uc.ListPosts(context.Background(), ListPostsInput{PostType: "Trade"})
	if !errors.Is(err, ErrInvalidPostType) {
		t.Fatalf("expected ErrInvalidPostType, got %v", err)
	}
}

func TestGetPost_CountsView(t *testing.T) {
	repo := &mockPostRepo{found: post.Post{ID: 3, ViewsCount: 4}}
	uc := NewPostUsecase(repo)

	p, err := uc.GetPost(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.incrCalls != 1 {
		t.Fatalf("expected one increment, got %d", repo.incrCalls)
	}
	if p.ViewsCount != 5 {
		t.Fatalf("expected views 5, got %d", p.ViewsCount)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	uc := NewPostUsecase(&mockPostRepo{findErr: post.ErrNotFound})
	_, err := uc.GetPost(context.Background(), 99)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestUpdatePostStatus_UnknownStatusRejected(t *testing.T) {
	uc := NewPostUsecase(&mockPostRepo{})
	err := uc.UpdatePostStatus(context.Background(), 1, "Archived")
	if !errors.Is(err, ErrInvalidPostStatus) {
		t.Fatalf("expected ErrInvalidPostStatus, got %v", err)
	}
}

func TestUpdatePostStatus_Success(t *testing.T) {
	repo := &mockPostRepo{}
	uc := NewPostUsecase(repo)

	if err := uc.UpdatePostStatus(context.Background(), 1, "Closed"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastStatus != post.StatusClosed {
		t.Fatalf("expected Closed, got %v", repo.lastStatus)
	}
}
