package handler

import (
	"errors"
	"time"

	"skill-exchange/internal/delivery/http/dto"
	"skill-exchange/internal/delivery/http/middleware"
	"skill-exchange/internal/pkg/response"
	"skill-exchange/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	FullName    *string    `json:"full_name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	PhotoURL    *string    `json:"photo_url"`
	Description *string    `json:"description"`
}

type createContactRequest struct {
	ContactType  string `json:"contact_type"`
	ContactValue string `json:"contact_value"`
	IsPublic     bool   `json:"is_public"`
	DisplayOrder int    `json:"display_order"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id/profile", h.Get)
	r.Put("/:id/profile", h.Update)
	r.Post("/:id/contacts", h.CreateContact)
	r.Get("/:id/contacts", h.ListContacts)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.GetProfile(c.Context(), accountID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileResponse{
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

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err = h.uc.UpdateProfile(c.Context(), accountID, usecase.UpdateProfileInput{
		FullName:    req.FullName,
		DateOfBirth: req.DateOfBirth,
		PhotoURL:    req.PhotoURL,
		Description: req.Description,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) CreateContact(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createContactRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	contactID, err := h.uc.CreateContact(c.Context(), accountID, usecase.CreateContactInput{
		ContactType:  req.ContactType,
		ContactValue: req.ContactValue,
		IsPublic:     req.IsPublic,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, map[string]any{"contact_id": contactID})
}

func (h *ProfileHandler) ListContacts(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	publicOnly := c.Query("public_only") == "true"

	contacts, err := h.uc.ListContacts(c.Context(), accountID, publicOnly)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	res := make([]dto.ContactResponse, 0, len(contacts))
	for _, ct := range contacts {
		res = append(res, dto.ContactResponse{
			ContactID:    ct.ID,
			AccountID:    ct.AccountID,
			ContactType:  ct.ContactType,
			ContactValue: ct.ContactValue,
			IsPublic:     ct.IsPublic,
			DisplayOrder: ct.DisplayOrder,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
