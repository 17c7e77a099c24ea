package routes

import (
	"magang-backend/internal/handler"
	"magang-backend/internal/middleware"
	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, d Deps) {
	uc := usecase.NewAuthUsecase(d.Users, d.Config.JWTSecret, d.Config.JWTTTLHours)
	hdl := handler.NewAuthHandler(uc)
	secret := d.Config.JWTSecret

	api := app.Group("/api/auth")

	api.Post("/register", middleware.RegisterRateLimiter(), middleware.OptionalAuth(secret), hdl.Register)
	api.Post("/login", middleware.LoginRateLimiter(), hdl.Login)
	api.Get("/me", middleware.Auth(secret), hdl.Me)
}
