package handler

import (
	"time"

	"magang-backend/internal/export"
	"magang-backend/internal/middleware"
	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PresensiHandler struct {
	uc *usecase.PresensiUsecase
}

func NewPresensiHandler(uc *usecase.PresensiUsecase) *PresensiHandler {
	return &PresensiHandler{uc: uc}
}

type PresensiRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

func (h *PresensiHandler) HariIni(c *fiber.Ctx) error {
	today, err := h.uc.HariIni(middleware.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(today)
}

func (h *PresensiHandler) Masuk(c *fiber.Ctx) error {
	return h.absen(c, h.uc.Masuk, "Presensi masuk berhasil")
}

func (h *PresensiHandler) Keluar(c *fiber.Ctx) error {
	return h.absen(c, h.uc.Keluar, "Presensi keluar berhasil")
}

func (h *PresensiHandler) absen(c *fiber.Ctx, do func(usecase.Actor, usecase.Koordinat) (*usecase.HasilPresensi, error), message string) error {
	var req PresensiRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	res, err := do(middleware.ActorFrom(c), usecase.Koordinat{Latitude: *req.Latitude, Longitude: *req.Longitude})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": message,
		"waktu":   res.Decision.Now,
		"window":  res.Decision.Window,
		"jarak":   res.Jarak,
		"data":    res.Presensi,
	})
}

func (h *PresensiHandler) Riwayat(c *fiber.Ctx) error {
	list, err := h.uc.Riwayat(middleware.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *PresensiHandler) Rekap(c *fiber.Ctx) error {
	list, err := h.uc.Rekap(middleware.ActorFrom(c), c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *PresensiHandler) ExportRekap(c *fiber.Ctx) error {
	list, err := h.uc.Rekap(middleware.ActorFrom(c), c.Query("search"))
	if err != nil {
		return fail(c, err)
	}

	now := time.Now()
	c.Attachment(export.NamaFile("rekap_presensi", "xlsx", now))
	c.Set(fiber.HeaderContentType, export.ContentTypeXLSX)
	if err := export.PresensiXLSX(c.Response().BodyWriter(), list, now); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Gagal membuat Excel")
	}
	return nil
}
