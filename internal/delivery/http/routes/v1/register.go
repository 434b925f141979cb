package v1

import (
	"skill-exchange/internal/database"
	"skill-exchange/internal/delivery/http/handler"
	"skill-exchange/internal/delivery/http/middleware"
	"skill-exchange/internal/repository"
	"skill-exchange/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, db database.DB) {
	if r == nil {
		return
	}

	adminMw := middleware.NewAdminMiddleware()

	accountRepo := repository.NewPostgresAccountRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	contactRepo := repository.NewPostgresContactRepository(db)
	catalogRepo := repository.NewPostgresCatalogRepository(db)
	userSkillRepo := repository.NewPostgresUserSkillRepository(db)
	educationRepo := repository.NewPostgresEducationRepository(db)
	proofRepo := repository.NewPostgresProofRepository(db)
	postRepo := repository.NewPostgresPostRepository(db)

	accountUC := usecase.NewAccountUsecase(accountRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, contactRepo)
	catalogUC := usecase.NewCatalogUsecase(catalogRepo, userSkillRepo)
	userSkillUC := usecase.NewUserSkillUsecase(userSkillRepo, catalogRepo)
	educationUC := usecase.NewEducationUsecase(educationRepo)
	proofUC := usecase.NewProofUsecase(proofRepo)
	postUC := usecase.NewPostUsecase(postRepo)

	accountHandler := handler.NewAccountHandler(accountUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	catalogHandler := handler.NewCatalogHandler(catalogUC)
	userSkillHandler := handler.NewUserSkillHandler(userSkillUC)
	educationHandler := handler.NewEducationHandler(educationUC)
	proofHandler := handler.NewProofHandler(proofUC, adminMw)
	postHandler := handler.NewPostHandler(postUC)

	accountHandler.RegisterRoutes(r)
	catalogHandler.RegisterRoutes(r)
	postHandler.RegisterRoutes(r)
	proofHandler.RegisterAdminRoutes(r)

	usersGroup := r.Group("/users")
	RegisterUsers(usersGroup, profileHandler, userSkillHandler, educationHandler, proofHandler, postHandler)
}
