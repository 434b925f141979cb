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

type ProofHandler struct {
	uc    usecase.ProofUsecase
	admin *middleware.AdminMiddleware
}

type submitProofRequest struct {
	SkillID     *int64     `json:"skill_id"`
	EducationID *int64     `json:"education_id"`
	FileURL     string     `json:"file_url"`
	FileName    *string    `json:"file_name"`
	FileSize    *int64     `json:"file_size"`
	MimeType    *string    `json:"mime_type"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type decideProofRequest struct {
	Decision        string  `json:"decision"`
	RejectionReason *string `json:"rejection_reason"`
	ReviewNotes     *string `json:"review_notes"`
}

func NewProofHandler(uc usecase.ProofUsecase, admin *middleware.AdminMiddleware) *ProofHandler {
	return &ProofHandler{uc: uc, admin: admin}
}

// RegisterUserRoutes mounts the account-scoped proof endpoints.
func (h *ProofHandler) RegisterUserRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/proofs", h.Submit)
	r.Get("/:id/proofs", h.List)
}

// RegisterAdminRoutes mounts the review endpoint behind the admin guard.
func (h *ProofHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil || h.admin == nil {
		return
	}

	grp := r.Group("/proofs")
	grp.Post("/:id/verify", h.Decide, h.admin.Middleware())
}

func (h *ProofHandler) Submit(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req submitProofRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	proofID, err := h.uc.Submit(c.Context(), accountID, usecase.SubmitProofInput{
		SkillID:     req.SkillID,
		EducationID: req.EducationID,
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		MimeType:    req.MimeType,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		return mapProofUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, map[string]any{"proof_id": proofID})
}

func (h *ProofHandler) Decide(c fiber.Ctx) error {
	proofID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	adminID, ok := c.Locals(middleware.CtxAdminIDKey).(int64)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req decideProofRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err = h.uc.Decide(c.Context(), usecase.DecideProofInput{
		ProofID:         proofID,
		AdminID:         adminID,
		Decision:        req.Decision,
		RejectionReason: req.RejectionReason,
		ReviewNotes:     req.ReviewNotes,
	})
	if err != nil {
		return mapProofUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProofHandler) List(c fiber.Ctx) error {
	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListProofs(c.Context(), accountID)
	if err != nil {
		return mapProofUsecaseError(err)
	}

	res := make([]dto.ProofResponse, 0, len(items))
	for _, p := range items {
		res = append(res, dto.ProofResponse{
			ProofID:         p.ID,
			AccountID:       p.AccountID,
			SkillID:         p.SkillID,
			EducationID:     p.EducationID,
			FileURL:         p.FileURL,
			FileName:        p.FileName,
			FileSize:        p.FileSize,
			MimeType:        p.MimeType,
			Status:          string(p.Status),
			VerifiedBy:      p.VerifiedBy,
			VerifiedAt:      p.VerifiedAt,
			RejectionReason: p.RejectionReason,
			ExpiresAt:       p.ExpiresAt,
			CreatedAt:       p.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapProofUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProofNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Proof not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
