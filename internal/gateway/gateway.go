// Package gateway meneruskan /api/* ke backend supaya dashboard cukup memanggil origin yang sama.
package gateway

import (
	"log"
	"strings"

	"magang-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
)

func New(backendURL, corsOrigins string) *fiber.App {
	backend := strings.TrimRight(backendURL, "/")

	app := fiber.New(fiber.Config{
		AppName: "Magang Disdik Gateway",
		// body upload diteruskan apa adanya, batasnya dicek backend
		BodyLimit: 16 * 1024 * 1024,
	})
	app.Use(middleware.Recovery())
	app.Use(middleware.Logger())
	app.Use(middleware.Cors(corsOrigins))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "backend": backend})
	})

	app.All("/api/*", func(c *fiber.Ctx) error {
		target := backend + c.OriginalURL()
		if err := proxy.Do(c, target); err != nil {
			log.Printf("[GATEWAY] %s %s: %v", c.Method(), target, err)
			msg := "Backend tidak dapat dihubungi"
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": msg, "msg": msg})
		}
		c.Response().Header.Del(fiber.HeaderServer)
		return nil
	})

	return app
}
