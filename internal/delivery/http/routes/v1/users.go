package v1

import (
	"skill-exchange/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// RegisterUsers mounts every account-scoped resource under the users group.
func RegisterUsers(
	r fiber.Router,
	profileHandler *handler.ProfileHandler,
	userSkillHandler *handler.UserSkillHandler,
	educationHandler *handler.EducationHandler,
	proofHandler *handler.ProofHandler,
	postHandler *handler.PostHandler,
) {
	if r == nil {
		return
	}

	if profileHandler != nil {
		profileHandler.RegisterRoutes(r)
	}
	if userSkillHandler != nil {
		userSkillHandler.RegisterRoutes(r)
	}
	if educationHandler != nil {
		educationHandler.RegisterRoutes(r)
	}
	if proofHandler != nil {
		proofHandler.RegisterUserRoutes(r)
	}
	if postHandler != nil {
		postHandler.RegisterUserRoutes(r)
	}
}
