package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skill-exchange/internal/domain/post"
	"skill-exchange/internal/repository"
)

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrInvalidPostType   = errors.New("invalid post type")
	ErrInvalidPostStatus = errors.New("invalid post status")
)

// PostStatusAll disables the default Active filter when listing.
const PostStatusAll = "all"

type CreatePostInput struct {
	SkillID           int64
	PostType          string
	Title             string
	Details           string
	ContactPreference *string
	ExpiresAt         *time.Time
}

type ListPostsInput struct {
	SkillID  *int64
	PostType string
	Status   string
}

type PostUsecase interface {
	CreatePost(ctx context.Context, accountID int64, in CreatePostInput) (int64, error)
	ListPosts(ctx context.Context, in ListPostsInput) ([]post.Post, error)
	GetPost(ctx context.Context, postID int64) (post.Post, error)
	UpdatePostStatus(ctx context.Context, postID int64, status string) error
}

type Post struct {
	posts repository.PostRepository
}

func NewPostUsecase(posts repository.PostRepository) *Post {
	return &Post{posts: posts}
}

// CreatePost inserts the listing with status forced to Active; callers
// cannot open a post in any other state.
func (u *Post) CreatePost(ctx context.Context, accountID int64, in CreatePostInput) (int64, error) {
	if accountID <= 0 || in.SkillID <= 0 {
		return 0, ErrInvalidInput
	}
	postType := post.Type(in.PostType)
	if !postType.Valid() {
		return 0, ErrInvalidPostType
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Details) == "" {
		return 0, ErrInvalidInput
	}

	id, err := u.posts.Create(ctx, repository.CreatePostParams{
		AccountID:         accountID,
		SkillID:           in.SkillID,
		PostType:          postType,
		Title:             in.Title,
		Details:           in.Details,
		ContactPreference: in.ContactPreference,
		ExpiresAt:         in.ExpiresAt,
	})
	if err != nil {
		return 0, internalError(err)
	}
	return id, nil
}

// ListPosts filters on whatever predicates are set. Status defaults to
// Active; the explicit sentinel "all" lifts the filter.
func (u *Post) ListPosts(ctx context.Context, in ListPostsInput) ([]post.Post, error) {
	filter := repository.PostFilter{SkillID: in.SkillID}

	if in.SkillID != nil && *in.SkillID <= 0 {
		return nil, ErrInvalidInput
	}

	if pt := strings.TrimSpace(in.PostType); pt != "" {
		postType := post.Type(pt)
		if !postType.Valid() {
			return nil, ErrInvalidPostType
		}
		filter.PostType = &postType
	}

	switch st := strings.TrimSpace(in.Status); st {
	case "":
		active := post.StatusActive
		filter.Status = &active
	case PostStatusAll:
		// no status predicate
	default:
		status := post.Status(st)
		if !status.Valid() {
			return nil, ErrInvalidPostStatus
		}
		filter.Status = &status
	}

	out, err := u.posts.List(ctx, filter)
	if err != nil {
		return nil, internalError(err)
	}
	return out, nil
}

// GetPost returns a single listing and counts the view. The returned
// views count includes the read that just happened.
func (u *Post) GetPost(ctx context.Context, postID int64) (post.Post, error) {
	if postID <= 0 {
		return post.Post{}, ErrInvalidInput
	}

	p, err := u.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return post.Post{}, ErrPostNotFound
		}
		return post.Post{}, internalError(err)
	}

	if err := u.posts.IncrementViews(ctx, postID); err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return post.Post{}, ErrPostNotFound
		}
		return post.Post{}, internalError(err)
	}

	p.ViewsCount++
	return p, nil
}

// UpdatePostStatus validates the target status against the closed set but
// deliberately does not check transition legality; reopening a closed post
// is the caller's responsibility.
func (u *Post) UpdatePostStatus(ctx context.Context, postID int64, status string) error {
	if postID <= 0 {
		return ErrInvalidInput
	}
	st := post.Status(strings.TrimSpace(status))
	if !st.Valid() {
		return ErrInvalidPostStatus
	}

	if err := u.posts.UpdateStatus(ctx, postID, st); err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return ErrPostNotFound
		}
		return internalError(err)
	}
	return nil
}
