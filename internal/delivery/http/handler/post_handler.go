package handler

import (
	"errors"
	"strconv"
	"time"

	"skill-exchange/internal/delivery/http/dto"
	"skill-exchange/internal/delivery/http/middleware"
	"skill-exchange/internal/domain/post"
	"skill-exchange/internal/pkg/response"
	"skill-exchange/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PostHandler struct {
	uc usecase.PostUsecase
}

type createPostRequest struct {
	SkillID           int64      `json:"skill_id"`
	PostType          string     `json:"post_type"`
	Title             string     `json:"title"`
	Details           string     `json:"details"`
	ContactPreference *string    `json:"contact_preference"`
	ExpiresAt         *time.Time `json:"expires_at"`
}

type updatePostStatusRequest struct {
	Status string `json:"status"`
}

func NewPostHandler(uc usecase.PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

func (h *PostHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/posts")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Put("/:id/status", h.UpdateStatus)
}

// RegisterUserRoutes mounts post creation under the author's account.
func (h *PostHandler) RegisterUserRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/posts", h.Create)
}

func (h *PostHandler) Create(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	postID, err := h.uc.CreatePost(c.Context(), accountID, usecase.CreatePostInput{
		SkillID:           req.SkillID,
		PostType:          req.PostType,
		Title:             req.Title,
		Details:           req.Details,
		ContactPreference: req.ContactPreference,
		ExpiresAt:         req.ExpiresAt,
	})
	if err != nil {
		return mapPostUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, map[string]any{"post_id": postID})
}

func (h *PostHandler) List(c fiber.Ctx) error {
	in := usecase.ListPostsInput{
		PostType: c.Query("post_type"),
		Status:   c.Query("status"),
	}

	if raw := c.Query("skill_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		in.SkillID = &id
	}

	posts, err := h.uc.ListPosts(c.Context(), in)
	if err != nil {
		return mapPostUsecaseError(err)
	}

	res := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		res = append(res, postToResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *PostHandler) Get(c fiber.Ctx) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.GetPost(c.Context(), postID)
	if err != nil {
		return mapPostUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, postToResponse(p))
}

func (h *PostHandler) UpdateStatus(c fiber.Ctx) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updatePostStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdatePostStatus(c.Context(), postID, req.Status); err != nil {
		return mapPostUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func postToResponse(p post.Post) dto.PostResponse {
	return dto.PostResponse{
		PostID:            p.ID,
		AccountID:         p.AccountID,
		AuthorName:        p.AuthorName,
		SkillID:           p.SkillID,
		SkillName:         p.SkillName,
		PostType:          string(p.PostType),
		Title:             p.Title,
		Details:           p.Details,
		Status:            string(p.Status),
		ContactPreference: p.ContactPreference,
		ExpiresAt:         p.ExpiresAt,
		ViewsCount:        p.ViewsCount,
		CreatedAt:         p.CreatedAt,
	}
}

func mapPostUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrPostNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Post not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidPostType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid post type", nil, err)
	case errors.Is(err, usecase.ErrInvalidPostStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid post status", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
