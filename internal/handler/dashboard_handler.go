package handler

import (
	"magang-backend/internal/middleware"
	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler: statistik dashboard admin dan pengaturan lokasi kantor.
type DashboardHandler struct {
	uc *usecase.AdminUsecase
}

func NewDashboardHandler(uc *usecase.AdminUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

type LokasiRequest struct {
	NamaLokasi  string   `json:"namaLokasi" validate:"required"`
	Alamat      string   `json:"alamat"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeter float64  `json:"radiusMeter" validate:"required,gt=0"`
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.Dashboard(middleware.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data":    stats,
	})
}

func (h *DashboardHandler) ListLokasi(c *fiber.Ctx) error {
	list, err := h.uc.Lokasi(middleware.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *DashboardHandler) CreateLokasi(c *fiber.Ctx) error {
	var req LokasiRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	l, err := h.uc.TambahLokasi(middleware.ActorFrom(c), usecase.LokasiInput{
		NamaLokasi:  req.NamaLokasi,
		Alamat:      req.Alamat,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		RadiusMeter: req.RadiusMeter,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Lokasi kantor ditambahkan",
		"data":    l,
	})
}

func (h *DashboardHandler) DeleteLokasi(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "ID lokasi tidak valid")
	}
	if err := h.uc.HapusLokasi(middleware.ActorFrom(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Lokasi kantor dihapus"})
}
