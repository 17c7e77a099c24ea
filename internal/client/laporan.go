package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"magang-backend/internal/laporan"
	"magang-backend/internal/model"

	"github.com/gabriel-vasile/mimetype"
)

// Upload adalah file laporan yang akan dikirim. Content dibaca penuh di memori
// karena bisa dikirim dua kali (multipart lalu base64).
type Upload struct {
	Filename  string
	Content   []byte
	Judul     string
	Deskripsi string
	MimeType  string
}

func (u Upload) size() int64 { return int64(len(u.Content)) }

func (u Upload) mimeType() string {
	if u.MimeType != "" {
		return u.MimeType
	}
	return mimetype.Detect(u.Content).String()
}

// uploadStrategy adalah satu cara mengirim file yang sama.
// usable=nil berarti selalu boleh dicoba.
type uploadStrategy struct {
	name   string
	usable func(size int64) bool
	send   func(ctx context.Context, s Session, u Upload) (*model.Laporan, error)
}

func (c *Client) uploadStrategies() []uploadStrategy {
	return []uploadStrategy{
		{name: "multipart", send: c.uploadMultipart},
		{name: "base64", usable: laporan.FitsBase64, send: c.uploadBase64},
	}
}

// UploadReport: cek ukuran dulu (tanpa request), lalu multipart. Jika multipart gagal
// bukan karena 401 dan file masih muat untuk base64, coba base64. Selain itu error
// multipart yang dikembalikan.
func (c *Client) UploadReport(ctx context.Context, s Session, u Upload) (*model.Laporan, error) {
	if err := laporan.CheckSize(u.size(), c.MaxMB); err != nil {
		return nil, err
	}
	if s.Token == "" {
		return nil, ErrUnauthorized
	}

	var first error
	for i, st := range c.uploadStrategies() {
		if i > 0 && (errors.Is(first, ErrUnauthorized) || ctx.Err() != nil) {
			break
		}
		if st.usable != nil && !st.usable(u.size()) {
			continue
		}
		l, err := st.send(ctx, s, u)
		if err == nil {
			return l, nil
		}
		if first == nil {
			first = err
		}
	}
	return nil, first
}

func multipartBody(fields map[string]string, filename string, content []byte) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := fw.Write(content); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func (c *Client) sendMultipart(ctx context.Context, s Session, method, path string, fields map[string]string, filename string, content []byte) (*model.Laporan, error) {
	body, contentType, err := multipartBody(fields, filename, content)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, &s, method, path, body, contentType)
	if err != nil {
		return nil, err
	}
	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return decodeLaporan(resp.Body)
}

func decodeLaporan(r io.Reader) (*model.Laporan, error) {
	var out struct {
		Data model.Laporan `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) uploadMultipart(ctx context.Context, s Session, u Upload) (*model.Laporan, error) {
	return c.sendMultipart(ctx, s, http.MethodPost, "/api/laporan", map[string]string{
		"judul":     u.Judul,
		"deskripsi": u.Deskripsi,
	}, u.Filename, u.Content)
}

func (c *Client) uploadBase64(ctx context.Context, s Session, u Upload) (*model.Laporan, error) {
	var out struct {
		Data model.Laporan `json:"data"`
	}
	err := c.do(ctx, s, http.MethodPost, "/api/laporan/base64", map[string]string{
		"filename":  u.Filename,
		"base64":    base64.StdEncoding.EncodeToString(u.Content),
		"judul":     u.Judul,
		"deskripsi": u.Deskripsi,
		"mimeType":  u.mimeType(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) ListReports(ctx context.Context, s Session) ([]model.LaporanView, error) {
	var out []model.LaporanView
	if err := c.do(ctx, s, http.MethodGet, "/api/laporan", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResubmitFile mengganti file laporan berstatus revisi. Batas ukuran sama dengan upload.
func (c *Client) ResubmitFile(ctx context.Context, s Session, id uint, filename string, content []byte) (*model.Laporan, error) {
	if err := laporan.CheckSize(int64(len(content)), c.MaxMB); err != nil {
		return nil, err
	}
	if s.Token == "" {
		return nil, ErrUnauthorized
	}
	return c.sendMultipart(ctx, s, http.MethodPut, "/api/laporan/"+itoa(id)+"/file", nil, filename, content)
}

func (c *Client) UpdateDescription(ctx context.Context, s Session, id uint, deskripsi string) (*model.Laporan, error) {
	var out struct {
		Data model.Laporan `json:"data"`
	}
	if err := c.do(ctx, s, http.MethodPut, "/api/laporan/"+itoa(id), map[string]string{"deskripsi": deskripsi}, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteReport(ctx context.Context, s Session, id uint) error {
	return c.do(ctx, s, http.MethodDelete, "/api/laporan/"+itoa(id), nil, nil)
}

// DownloadReport menyalin isi file ke w dan mengembalikan jumlah byte.
func (c *Client) DownloadReport(ctx context.Context, s Session, fileID string, w io.Writer) (int64, error) {
	if s.Token == "" {
		return 0, ErrUnauthorized
	}
	req, err := c.newRequest(ctx, &s, http.MethodGet, "/api/laporan/download/"+url.PathEscape(fileID), nil, "")
	if err != nil {
		return 0, err
	}
	resp, err := c.send(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(w, resp.Body)
}

// ReportQuery adalah filter daftar laporan admin. Page 0 = tanpa pagination.
type ReportQuery struct {
	Search  string
	Tanggal string
	Sort    string
	Page    int
	Limit   int
}

func (q ReportQuery) encode() string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Tanggal != "" {
		v.Set("tanggal", q.Tanggal)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) AdminReports(ctx context.Context, s Session, q ReportQuery) ([]model.LaporanView, error) {
	q.Page = 0
	var out []model.LaporanView
	if err := c.do(ctx, s, http.MethodGet, "/api/laporan/admin"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminReportsPage(ctx context.Context, s Session, q ReportQuery) (*ReportPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	var out ReportPage
	if err := c.do(ctx, s, http.MethodGet, "/api/laporan/admin"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Review: status pending|sesuai|revisi. Catatan lama selalu ditimpa.
func (c *Client) Review(ctx context.Context, s Session, id uint, status, catatan string) (*model.LaporanView, error) {
	if _, err := laporan.ParseStatus(status); err != nil {
		return nil, err
	}
	var out struct {
		Data model.LaporanView `json:"data"`
	}
	err := c.do(ctx, s, http.MethodPut, "/api/laporan/admin/"+itoa(id)+"/review", map[string]string{
		"status":       status,
		"adminCatatan": catatan,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
