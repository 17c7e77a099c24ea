package client

import (
	"context"
	"net/http"
	"net/url"

	"magang-backend/internal/model"
)

func (c *Client) Participants(ctx context.Context, s Session, search string) ([]model.UserRef, error) {
	path := "/api/users/peserta"
	if search != "" {
		path += "?" + url.Values{"search": {search}}.Encode()
	}
	var out []model.UserRef
	if err := c.do(ctx, s, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ParticipantStats: sortBy name|hadir|tugas, order asc|desc.
func (c *Client) ParticipantStats(ctx context.Context, s Session, search, sortBy, order string) ([]ParticipantStat, error) {
	v := url.Values{}
	for k, val := range map[string]string{"search": search, "sortBy": sortBy, "order": order} {
		if val != "" {
			v.Set(k, val)
		}
	}
	path := "/api/users/admin/peserta"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}
	var out []ParticipantStat
	if err := c.do(ctx, s, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendFeedback(ctx context.Context, s Session, userID uint, isi string) (*model.Feedback, error) {
	var out struct {
		Data model.Feedback `json:"data"`
	}
	err := c.do(ctx, s, http.MethodPost, "/api/feedback", map[string]interface{}{
		"userId":   userID,
		"feedback": isi,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) MyFeedback(ctx context.Context, s Session) ([]model.Feedback, error) {
	var out []model.Feedback
	if err := c.do(ctx, s, http.MethodGet, "/api/feedback", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Dashboard(ctx context.Context, s Session) (*DashboardStats, error) {
	var out struct {
		Data DashboardStats `json:"data"`
	}
	if err := c.do(ctx, s, http.MethodGet, "/api/admin/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
