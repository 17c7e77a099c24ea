// Package client adalah API client Go untuk magang-backend.
// Token tidak disimpan global: setiap panggilan menerima Session secara eksplisit.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"magang-backend/internal/model"
	"magang-backend/internal/presensi"
)

// ErrUnauthorized: HTTP 401 atau token kosong. Tidak pernah di-retry.
var ErrUnauthorized = errors.New("Sesi berakhir atau token tidak valid, silakan login ulang")

// APIError adalah respon non-2xx selain 401.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Session berisi bearer token hasil login.
type Session struct {
	Token string
}

type Client struct {
	BaseURL string
	HTTP    *http.Client

	// MaxMB batas ukuran upload yang dicek sebelum request dikirim.
	MaxMB int
	// Gate dievaluasi sebelum presensi dikirim. Server tetap memeriksa ulang.
	Gate *presensi.Gate
	Now  func() time.Time
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		MaxMB:   4,
		Gate:    presensi.NewGate(presensi.WindowConfig{}),
		Now:     time.Now,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c *Client) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Client) newRequest(ctx context.Context, s *Session, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if s != nil {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	return req, nil
}

// send mengirim request dan mengembalikan response 2xx. Selain itu body ditutup dan
// diubah jadi ErrUnauthorized atau *APIError.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	return nil, readAPIError(resp)
}

func readAPIError(resp *http.Response) error {
	fallback := &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("Request gagal (HTTP %d)", resp.StatusCode)}

	mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mt != "application/json" {
		return fallback
	}
	var body struct {
		Msg   string `json:"msg"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return fallback
	}
	switch {
	case body.Msg != "":
		fallback.Message = body.Msg
	case body.Error != "":
		fallback.Message = body.Error
	}
	return fallback
}

// do: request JSON dengan session. out boleh nil.
func (c *Client) do(ctx context.Context, s Session, method, path string, in, out interface{}) error {
	if s.Token == "" {
		return ErrUnauthorized
	}
	return c.doJSON(ctx, &s, method, path, in, out)
}

func (c *Client) doJSON(ctx context.Context, s *Session, method, path string, in, out interface{}) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := c.newRequest(ctx, s, method, path, body, contentType)
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (c *Client) Login(ctx context.Context, email, password string) (Session, *model.User, error) {
	var out struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	err := c.doJSON(ctx, nil, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return Session{}, nil, err
	}
	return Session{Token: out.Token}, &out.User, nil
}

// Register tanpa session = pendaftaran peserta. Akun admin butuh session admin.
func (c *Client) Register(ctx context.Context, in RegisterInput, s *Session) (*model.User, error) {
	if s != nil && s.Token == "" {
		s = nil
	}
	var out struct {
		User model.User `json:"user"`
	}
	if err := c.doJSON(ctx, s, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Me(ctx context.Context, s Session) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, s, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
