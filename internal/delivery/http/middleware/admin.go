package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// CtxAdminIDKey holds the admin account id extracted from the header.
const CtxAdminIDKey = "admin_id"

// AdminHeader identifies the reviewing admin. The platform trusts the
// caller here; there is deliberately no token scheme in front of it.
const AdminHeader = "X-Admin-ID"

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// Middleware rejects requests without a usable admin identity before any
// database work happens.
func (m *AdminMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(AdminHeader))
		if raw == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		adminID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || adminID <= 0 {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		}

		c.Locals(CtxAdminIDKey, adminID)
		return c.Next()
	}
}
