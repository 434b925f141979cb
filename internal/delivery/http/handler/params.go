package handler

import (
	"strconv"

	"skill-exchange/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func pathID(c fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return id, nil
}
