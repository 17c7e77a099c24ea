package handler

import (
	"magang-backend/internal/middleware"
	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	uc *usecase.FeedbackUsecase
}

func NewFeedbackHandler(uc *usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

type FeedbackRequest struct {
	UserID   uint   `json:"userId" validate:"required"`
	Feedback string `json:"feedback" validate:"required"`
}

func (h *FeedbackHandler) Kirim(c *fiber.Ctx) error {
	var req FeedbackRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	fb, err := h.uc.Kirim(middleware.ActorFrom(c), req.UserID, req.Feedback)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Feedback berhasil dikirim",
		"data":    fb,
	})
}

func (h *FeedbackHandler) Milik(c *fiber.Ctx) error {
	list, err := h.uc.Milik(middleware.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}
