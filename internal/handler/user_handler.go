package handler

import (
	"magang-backend/internal/middleware"
	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	uc *usecase.PesertaUsecase
}

func NewUserHandler(uc *usecase.PesertaUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Peserta: daftar ringkas untuk dropdown feedback.
func (h *UserHandler) Peserta(c *fiber.Ctx) error {
	list, err := h.uc.List(middleware.ActorFrom(c), c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *UserHandler) PesertaStats(c *fiber.Ctx) error {
	list, err := h.uc.Stats(middleware.ActorFrom(c), c.Query("search"), c.Query("sortBy", "name"), c.Query("order", "asc"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}
