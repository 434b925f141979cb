package routes

import (
	"skill-exchange/internal/database"
	v1 "skill-exchange/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, db database.DB) {
	if r == nil {
		return
	}

	v1.Register(r, db)
}
