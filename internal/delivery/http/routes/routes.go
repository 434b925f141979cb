package routes

import (
	"skill-exchange/internal/database"
	"skill-exchange/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	db     database.DB
	health *handler.HealthHandler
}

func NewRegistry(db database.DB) *Registry {
	return &Registry{db: db, health: handler.NewHealthHandler(db)}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.db)
}
