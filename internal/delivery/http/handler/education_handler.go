package handler

import (
	"errors"

	"skill-exchange/internal/delivery/http/dto"
	"skill-exchange/internal/delivery/http/middleware"
	"skill-exchange/internal/pkg/response"
	"skill-exchange/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EducationHandler struct {
	uc usecase.EducationUsecase
}

type createEducationRequest struct {
	InstitutionName string  `json:"institution_name"`
	DegreeField     string  `json:"degree_field"`
	YearStarted     *int    `json:"year_started"`
	YearCompleted   *int    `json:"year_completed"`
	DegreeLevel     *string `json:"degree_level"`
	IsCurrent       bool    `json:"is_current"`
}

func NewEducationHandler(uc usecase.EducationUsecase) *EducationHandler {
	return &EducationHandler{uc: uc}
}

func (h *EducationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/education", h.Create)
	r.Get("/:id/education", h.List)
}

func (h *EducationHandler) Create(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createEducationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	educationID, err := h.uc.CreateEducation(c.Context(), accountID, usecase.CreateEducationInput{
		InstitutionName: req.InstitutionName,
		DegreeField:     req.DegreeField,
		YearStarted:     req.YearStarted,
		YearCompleted:   req.YearCompleted,
		DegreeLevel:     req.DegreeLevel,
		IsCurrent:       req.IsCurrent,
	})
	if err != nil {
		return mapEducationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, map[string]any{"education_id": educationID})
}

func (h *EducationHandler) List(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListEducation(c.Context(), accountID)
	if err != nil {
		return mapEducationUsecaseError(err)
	}

	res := make([]dto.EducationResponse, 0, len(items))
	for _, e := range items {
		res = append(res, dto.EducationResponse{
			EducationID:     e.ID,
			AccountID:       e.AccountID,
			InstitutionName: e.InstitutionName,
			DegreeField:     e.DegreeField,
			YearStarted:     e.YearStarted,
			YearCompleted:   e.YearCompleted,
			DegreeLevel:     e.DegreeLevel,
			IsCurrent:       e.IsCurrent,
			CreatedAt:       e.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapEducationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
