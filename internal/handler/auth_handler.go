package handler

import (
	"errors"

	"magang-backend/internal/middleware"
	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin peserta"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register: publik untuk peserta. Token admin (opsional) dibaca oleh OptionalAuth.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	var caller *usecase.Actor
	if a := middleware.ActorFrom(c); a.Valid() {
		caller = &a
	}

	user, err := h.uc.Register(usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, caller)
	if err != nil {
		if errors.Is(err, usecase.ErrConflict) {
			return errorJSON(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registrasi berhasil",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	token, user, err := h.uc.Login(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Me(middleware.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}
