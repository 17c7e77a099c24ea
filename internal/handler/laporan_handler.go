package handler

import (
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"magang-backend/internal/export"
	"magang-backend/internal/middleware"
	"magang-backend/internal/model"
	"magang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type LaporanHandler struct {
	uc *usecase.LaporanUsecase
}

func NewLaporanHandler(uc *usecase.LaporanUsecase) *LaporanHandler {
	return &LaporanHandler{uc: uc}
}

type Base64Request struct {
	Filename  string `json:"filename" validate:"required"`
	Base64    string `json:"base64" validate:"required"`
	Judul     string `json:"judul" validate:"required"`
	Deskripsi string `json:"deskripsi"`
	MimeType  string `json:"mimeType"`
}

type DeskripsiRequest struct {
	Deskripsi string `json:"deskripsi"`
}

type ReviewRequest struct {
	Status       string `json:"status" validate:"required"`
	AdminCatatan string `json:"adminCatatan"`
}

func (h *LaporanHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListOwn(middleware.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// formFile membuka file multipart. Penutupan file jadi tanggung jawab pemanggil.
func formFile(c *fiber.Ctx) (usecase.FileInput, multipart.File, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		return usecase.FileInput{}, nil, false
	}
	f, err := fh.Open()
	if err != nil {
		return usecase.FileInput{}, nil, false
	}
	return usecase.FileInput{Name: fh.Filename, Size: fh.Size, Body: f}, f, true
}

func (h *LaporanHandler) Upload(c *fiber.Ctx) error {
	in, f, ok := formFile(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "File wajib diupload")
	}
	defer f.Close()

	l, err := h.uc.Submit(middleware.ActorFrom(c), usecase.UploadInput{
		Judul:     c.FormValue("judul"),
		Deskripsi: c.FormValue("deskripsi"),
		File:      in,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Laporan berhasil diupload",
		"data":    l,
	})
}

func (h *LaporanHandler) UploadBase64(c *fiber.Ctx) error {
	var req Base64Request
	if ok, err := bind(c, &req); !ok {
		return err
	}

	l, err := h.uc.SubmitBase64(middleware.ActorFrom(c), usecase.Base64Input{
		Filename:  req.Filename,
		Base64:    req.Base64,
		Judul:     req.Judul,
		Deskripsi: req.Deskripsi,
		MimeType:  req.MimeType,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Laporan berhasil diupload",
		"data":    l,
	})
}

func (h *LaporanHandler) ResubmitFile(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "ID laporan tidak valid")
	}
	in, f, ok := formFile(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "File wajib diupload")
	}
	defer f.Close()

	l, err := h.uc.ResubmitFile(middleware.ActorFrom(c), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "File laporan berhasil diganti, menunggu review ulang",
		"data":    l,
	})
}

func (h *LaporanHandler) UpdateDescription(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "ID laporan tidak valid")
	}
	var req DeskripsiRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	l, err := h.uc.UpdateDescription(middleware.ActorFrom(c), id, req.Deskripsi)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Deskripsi laporan diperbarui",
		"data":    l,
	})
}

func (h *LaporanHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "ID laporan tidak valid")
	}
	if err := h.uc.Delete(middleware.ActorFrom(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Laporan berhasil dihapus"})
}

func (h *LaporanHandler) Download(c *fiber.Ctx) error {
	rc, l, err := h.uc.Download(middleware.ActorFrom(c), c.Params("fileId"))
	if err != nil {
		return fail(c, err)
	}

	name := l.OriginalName
	if name == "" {
		name = l.FileID
	}
	c.Attachment(name)
	if l.MimeType != "" {
		c.Set(fiber.HeaderContentType, l.MimeType)
	}
	// fasthttp menutup rc setelah body terkirim
	if l.Size > 0 {
		return c.SendStream(rc, int(l.Size))
	}
	return c.SendStream(rc)
}

func filterFromQuery(c *fiber.Ctx) usecase.LaporanFilter {
	return usecase.LaporanFilter{
		Search:  c.Query("search"),
		Tanggal: c.Query("tanggal"),
		Sort:    c.Query("sort", usecase.SortTerbaru),
		Page:    c.QueryInt("page", 1),
		Limit:   c.QueryInt("limit", usecase.DefaultLimit),
	}
}

// AdminList: tanpa ?page dikembalikan array (dashboard memfilter sendiri),
// dengan ?page dikembalikan {data, pagination}.
func (h *LaporanHandler) AdminList(c *fiber.Ctx) error {
	actor := middleware.ActorFrom(c)
	f := filterFromQuery(c)

	if c.Query("page") == "" {
		list, err := h.uc.ListFiltered(actor, f)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(model.LaporanViews(list))
	}

	page, err := h.uc.ListAll(actor, f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(page)
}

func (h *LaporanHandler) AdminExport(c *fiber.Ctx) error {
	list, err := h.uc.ListFiltered(middleware.ActorFrom(c), filterFromQuery(c))
	if err != nil {
		return fail(c, err)
	}

	now := time.Now()
	switch format := strings.ToLower(c.Query("format", "xlsx")); format {
	case "csv":
		c.Attachment(export.NamaFile("rekap_laporan", "csv", now))
		c.Set(fiber.HeaderContentType, export.ContentTypeCSV)
		err = export.LaporanCSV(c.Response().BodyWriter(), list)
	case "xlsx":
		c.Attachment(export.NamaFile("rekap_laporan", "xlsx", now))
		c.Set(fiber.HeaderContentType, export.ContentTypeXLSX)
		err = export.LaporanXLSX(c.Response().BodyWriter(), list, now)
	default:
		return errorJSON(c, fiber.StatusBadRequest, fmt.Sprintf("Format %q tidak didukung, gunakan xlsx atau csv", format))
	}
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Gagal membuat file export")
	}
	return nil
}

func (h *LaporanHandler) Review(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "ID laporan tidak valid")
	}
	var req ReviewRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	v, err := h.uc.Review(middleware.ActorFrom(c), id, req.Status, req.AdminCatatan)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Review laporan tersimpan",
		"data":    v,
	})
}
