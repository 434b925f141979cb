package handler

import (
	"errors"
	"strconv"

	"skill-exchange/internal/delivery/http/dto"
	"skill-exchange/internal/delivery/http/middleware"
	"skill-exchange/internal/pkg/response"
	"skill-exchange/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/categories", h.ListCategories)
	grp.Get("/levels", h.ListLevels)
	grp.Get("/", h.ListSkills)
	grp.Get("/:name/users", h.SearchUsers)
}

func (h *CatalogHandler) ListCategories(c fiber.Ctx) error {
	categories, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return mapCatalogUsecaseError(err)
	}

	res := make([]dto.SkillCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		res = append(res, dto.SkillCategoryResponse{
			CategoryID:   cat.ID,
			Name:         cat.Name,
			Description:  cat.Description,
			IconURL:      cat.IconURL,
			DisplayOrder: cat.DisplayOrder,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) ListLevels(c fiber.Ctx) error {
	levels, err := h.uc.ListLevels(c.Context())
	if err != nil {
		return mapCatalogUsecaseError(err)
	}

	res := make([]dto.SkillLevelResponse, 0, len(levels))
	for _, l := range levels {
		res = append(res, dto.SkillLevelResponse{
			LevelID:     l.ID,
			Name:        l.Name,
			Rank:        l.Rank,
			Description: l.Description,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) ListSkills(c fiber.Ctx) error {
	var categoryID *int64
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		categoryID = &id
	}

	skills, err := h.uc.ListSkills(c.Context(), categoryID)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}

	res := make([]dto.CatalogSkillResponse, 0, len(skills))
	for _, s := range skills {
		res = append(res, dto.CatalogSkillResponse{
			SkillID:     s.ID,
			SkillName:   s.Name,
			CategoryID:  s.CategoryID,
			Description: s.Description,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CatalogHandler) SearchUsers(c fiber.Ctx) error {
	skillName := c.Params("name")

	var minLevelRank *int
	if raw := c.Query("min_level_rank"); raw != "" {
		rank, err := strconv.Atoi(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		minLevelRank = &rank
	}

	profiles, err := h.uc.SearchUsersBySkill(c.Context(), skillName, minLevelRank)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}

	res := make([]dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, dto.ProfileResponse{
			AccountID:      p.AccountID,
			FullName:       p.FullName,
			DateOfBirth:    p.DateOfBirth,
			PhotoURL:       p.PhotoURL,
			Description:    p.Description,
			LastSeenOnline: p.LastSeenOnline,
			IsActive:       p.IsActive,
			CreatedAt:      p.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapCatalogUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
