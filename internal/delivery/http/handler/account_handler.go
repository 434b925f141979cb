package handler

import (
	"errors"

	"skill-exchange/internal/delivery/http/dto"
	"skill-exchange/internal/delivery/http/middleware"
	"skill-exchange/internal/pkg/response"
	"skill-exchange/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AccountHandler struct {
	uc usecase.AccountUsecase
}

type registerRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

func (h *AccountHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/accounts")
	grp.Post("/register", h.Register)
	grp.Post("/login", h.Login)
	grp.Delete("/:id", h.Delete)
}

func (h *AccountHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	accountID, err := h.uc.Register(c.Context(), usecase.RegisterInput{Login: req.Login, Password: req.Password})
	if err != nil {
		return mapAccountUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.RegisterResponse{AccountID: accountID})
}

func (h *AccountHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	identity, err := h.uc.Authenticate(c.Context(), usecase.LoginInput{Login: req.Login, Password: req.Password})
	if err != nil {
		return mapAccountUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.LoginResponse{
		AccountID: identity.AccountID,
		Login:     identity.Login,
		IsAdmin:   identity.IsAdmin,
	})
}

func (h *AccountHandler) Delete(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.SoftDelete(c.Context(), accountID); err != nil {
		return mapAccountUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapAccountUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrLoginTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Login already taken", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Account not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
