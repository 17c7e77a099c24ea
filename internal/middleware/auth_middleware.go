package middleware

import (
	"strings"

	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func deny(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg, "msg": msg})
}

func parseToken(header, secret string) (jwt.MapClaims, bool) {
	// Format header: "Bearer <token>"
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(tokenString) == "" {
		return nil, false
	}

	token, err := jwt.Parse(strings.TrimSpace(tokenString), func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

func setClaims(c *fiber.Ctx, claims jwt.MapClaims) {
	c.Locals("user_id", claims["user_id"])
	c.Locals("email", claims["email"])
	c.Locals("role", claims["role"])
}

// Auth mewajibkan Bearer token yang valid.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil token dari Header Authorization
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return deny(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
		}

		// 2. Parse dan Validasi Token
		claims, ok := parseToken(authHeader, secret)
		if !ok {
			return deny(c, fiber.StatusUnauthorized, "Token tidak valid atau kadaluwarsa")
		}

		// 3. Simpan data user (Claims) ke Context agar bisa dipakai di Handler
		setClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuth mengisi Locals jika token ada dan valid, tanpa menolak request.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, ok := parseToken(c.Get("Authorization"), secret); ok {
			setClaims(c, claims)
		}
		return c.Next()
	}
}

// ActorFrom membaca identitas dari Locals. user_id dari JWT berupa float64.
func ActorFrom(c *fiber.Ctx) usecase.Actor {
	var a usecase.Actor
	if id, ok := c.Locals("user_id").(float64); ok && id > 0 {
		a.ID = uint(id)
	}
	a.Email, _ = c.Locals("email").(string)
	a.Role, _ = c.Locals("role").(string)
	return a
}
