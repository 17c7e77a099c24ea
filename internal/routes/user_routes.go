package routes

import (
	"magang-backend/internal/handler"
	"magang-backend/internal/middleware"
	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, d Deps) {
	uc := usecase.NewPesertaUsecase(d.Users, d.Presensi, d.Laporan)
	hdl := handler.NewUserHandler(uc)

	api := app.Group("/api/users", middleware.Auth(d.Config.JWTSecret), middleware.AdminOnly())
	api.Get("/peserta", hdl.Peserta)
	api.Get("/admin/peserta", hdl.PesertaStats)
}

func SetupFeedbackRoutes(app *fiber.App, d Deps) {
	uc := usecase.NewFeedbackUsecase(d.Feedback, d.Users, d.Notifier)
	hdl := handler.NewFeedbackHandler(uc)

	api := app.Group("/api/feedback", middleware.Auth(d.Config.JWTSecret))
	api.Post("/", middleware.AdminOnly(), hdl.Kirim)
	api.Get("/", middleware.PesertaOnly(), hdl.Milik)
}
