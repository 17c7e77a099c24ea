package routes

import (
	"magang-backend/internal/handler"
	"magang-backend/internal/middleware"
	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupLaporanRoutes(app *fiber.App, d Deps) {
	uc := usecase.NewLaporanUsecase(d.Laporan, d.Files, d.Config.MaxUploadMB).WithClock(d.clock())
	hdl := handler.NewLaporanHandler(uc)

	// Role dicek per route: middleware group berlaku untuk semua sub-path (termasuk /admin).
	api := app.Group("/api/laporan", middleware.Auth(d.Config.JWTSecret))

	admin := middleware.AdminOnly()
	api.Get("/admin", admin, hdl.AdminList)
	api.Get("/admin/export", admin, hdl.AdminExport)
	api.Put("/admin/:id/review", admin, hdl.Review)

	// pemilik atau admin
	api.Get("/download/:fileId", hdl.Download)

	peserta := middleware.PesertaOnly()
	api.Get("/", peserta, hdl.List)
	api.Post("/", peserta, hdl.Upload)
	api.Post("/base64", peserta, hdl.UploadBase64)
	api.Put("/:id/file", peserta, hdl.ResubmitFile)
	api.Put("/:id", peserta, hdl.UpdateDescription)
	api.Delete("/:id", peserta, hdl.Delete)
}
