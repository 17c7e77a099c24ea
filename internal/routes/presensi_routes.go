package routes

import (
	"magang-backend/internal/handler"
	"magang-backend/internal/middleware"
	"magang-backend/internal/presensi"
	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupPresensiRoutes(app *fiber.App, d Deps) {
	gate := presensi.NewGate(d.Config.Presensi)
	uc := usecase.NewPresensiUsecase(d.Presensi, d.Lokasi, gate).WithClock(d.clock())
	hdl := handler.NewPresensiHandler(uc)

	// Grouping route khusus presensi
	api := app.Group("/api/presensi", middleware.Auth(d.Config.JWTSecret))

	peserta := middleware.PesertaOnly()
	api.Get("/hari-ini", peserta, hdl.HariIni)
	api.Post("/masuk", peserta, hdl.Masuk)
	api.Post("/keluar", peserta, hdl.Keluar)
	api.Get("/riwayat", peserta, hdl.Riwayat)

	admin := middleware.AdminOnly()
	api.Get("/admin", admin, hdl.Rekap)
	api.Get("/admin/export", admin, hdl.ExportRekap)
}
