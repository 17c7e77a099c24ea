package middleware

import (
	"magang-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Ambil role user dari context (diset di Auth middleware)
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return deny(c, fiber.StatusForbidden, "Akses ditolak: Role tidak valid")
		}

		for _, role := range allowedRoles {
			if role == userRole {
				return c.Next()
			}
		}

		if len(allowedRoles) == 1 && allowedRoles[0] == model.RoleAdmin {
			return deny(c, fiber.StatusForbidden, "Akses ditolak: Anda bukan Admin")
		}
		return deny(c, fiber.StatusForbidden, "Akses ditolak: Role tidak diizinkan")
	}
}

func AdminOnly() fiber.Handler {
	return Role(model.RoleAdmin)
}

func PesertaOnly() fiber.Handler {
	return Role(model.RolePeserta)
}
