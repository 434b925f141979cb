package handler

import (
	"errors"

	"skill-exchange/internal/delivery/http/dto"
	"skill-exchange/internal/delivery/http/middleware"
	"skill-exchange/internal/pkg/response"
	"skill-exchange/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

type addUserSkillRequest struct {
	SkillID         int64    `json:"skill_id"`
	SkillLevelID    int64    `json:"skill_level_id"`
	ExperienceYears *float64 `json:"experience_years"`
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/skills", h.Add)
	r.Get("/:id/skills", h.List)
}

func (h *UserSkillHandler) Add(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addUserSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err = h.uc.AddUserSkill(c.Context(), accountID, usecase.AddUserSkillInput{
		SkillID:         req.SkillID,
		SkillLevelID:    req.SkillLevelID,
		ExperienceYears: req.ExperienceYears,
	})
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, nil)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListUserSkills(c.Context(), accountID)
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}

	res := make([]dto.UserSkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.UserSkillResponse{
			AccountID:       it.AccountID,
			SkillID:         it.SkillID,
			SkillName:       it.SkillName,
			CategoryName:    it.CategoryName,
			LevelName:       it.LevelName,
			LevelRank:       it.LevelRank,
			IsVerified:      it.IsVerified,
			ExperienceYears: it.ExperienceYears,
			AddedAt:         it.AddedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapUserSkillUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
