package routes

import (
	"magang-backend/internal/handler"
	"magang-backend/internal/middleware"
	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, d Deps) {
	uc := usecase.NewAdminUsecase(d.Dashboard, d.Lokasi).WithClock(d.clock())
	hdl := handler.NewDashboardHandler(uc)

	api := app.Group("/api/admin", middleware.Auth(d.Config.JWTSecret), middleware.AdminOnly())
	api.Get("/dashboard", hdl.GetStats)

	api.Get("/lokasi", hdl.ListLokasi)
	api.Post("/lokasi", hdl.CreateLokasi)
	api.Delete("/lokasi/:id", hdl.DeleteLokasi)
}
