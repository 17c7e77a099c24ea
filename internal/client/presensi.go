package client

import (
	"context"
	"net/http"
	"net/url"

	"magang-backend/internal/model"
	"magang-backend/internal/presensi"
)

// WindowError: presensi ditolak lokal karena di luar jam yang diizinkan.
type WindowError struct {
	Decision presensi.Decision
}

func (e *WindowError) Error() string {
	return e.Decision.Message()
}

type AbsenResult struct {
	Message string              `json:"message"`
	Waktu   string              `json:"waktu"`
	Window  presensi.TimeWindow `json:"window"`
	Jarak   float64             `json:"jarak"`
	Data    model.Presensi      `json:"data"`
}

func (c *Client) Today(ctx context.Context, s Session) (*Today, error) {
	var out Today
	if err := c.do(ctx, s, http.MethodGet, "/api/presensi/hari-ini", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncGate mengganti gate lokal dengan jam presensi yang dipakai server.
func (c *Client) SyncGate(ctx context.Context, s Session) error {
	today, err := c.Today(ctx, s)
	if err != nil {
		return err
	}
	c.Gate = presensi.NewGate(today.WindowConfig())
	return nil
}

func (c *Client) CheckIn(ctx context.Context, s Session, lat, lng float64) (*AbsenResult, error) {
	return c.absen(ctx, s, presensi.Masuk, lat, lng)
}

func (c *Client) CheckOut(ctx context.Context, s Session, lat, lng float64) (*AbsenResult, error) {
	return c.absen(ctx, s, presensi.Keluar, lat, lng)
}

func (c *Client) absen(ctx context.Context, s Session, action presensi.Action, lat, lng float64) (*AbsenResult, error) {
	if c.Gate != nil {
		if d := c.Gate.EvaluateAt(action, c.now()); !d.Allowed {
			return nil, &WindowError{Decision: d}
		}
	}

	var out AbsenResult
	err := c.do(ctx, s, http.MethodPost, "/api/presensi/"+string(action), map[string]float64{
		"latitude":  lat,
		"longitude": lng,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) History(ctx context.Context, s Session) ([]model.Presensi, error) {
	var out []model.Presensi
	if err := c.do(ctx, s, http.MethodGet, "/api/presensi/riwayat", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Recap(ctx context.Context, s Session, search string) ([]model.PresensiView, error) {
	path := "/api/presensi/admin"
	if search != "" {
		path += "?" + url.Values{"search": {search}}.Encode()
	}
	var out []model.PresensiView
	if err := c.do(ctx, s, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
