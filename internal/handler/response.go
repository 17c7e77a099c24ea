package handler

import (
	"errors"
	"log"
	"strconv"

	"magang-backend/internal/laporan"
	"magang-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// errorJSON: dashboard membaca "msg", client mobile/Go membaca "error".
func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg, "msg": msg})
}

// fail memetakan error usecase ke status HTTP.
func fail(c *fiber.Ctx, err error) error {
	var (
		werr *usecase.WindowError
		serr *laporan.SizeError
		verr *usecase.ValidationError
	)

	switch {
	case errors.As(err, &werr):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":  err.Error(),
			"msg":    err.Error(),
			"window": werr.Decision.Window,
			"now":    werr.Decision.Now,
		})
	case errors.As(err, &serr):
		return errorJSON(c, fiber.StatusRequestEntityTooLarge, err.Error())
	case errors.As(err, &verr):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrUnauthorized), errors.Is(err, usecase.ErrLoginGagal):
		return errorJSON(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrConflict),
		errors.Is(err, laporan.ErrResubmit),
		usecase.IsStateError(err):
		return errorJSON(c, fiber.StatusConflict, err.Error())
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	return errorJSON(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

// bind parse body lalu validasi dengan tag `validate`. ok=false berarti response error sudah ditulis.
func bind(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, errorJSON(c, fiber.StatusBadRequest, "Data tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return false, errorJSON(c, fiber.StatusBadRequest, "Data tidak valid")
		}
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fe.Tag()
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validasi gagal",
			"msg":    "Validasi gagal",
			"fields": fields,
		})
	}
	return true, nil
}

func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
