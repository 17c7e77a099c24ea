package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayMeneruskanAPI(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"method": r.Method,
			"path":   r.URL.RequestURI(),
			"auth":   r.Header.Get("Authorization"),
			"body":   string(body),
		})
	}))
	defer backend.Close()

	app := New(backend.URL+"/", "*")

	req := httptest.NewRequest("POST", "/api/laporan/admin?page=2&search=sari", strings.NewReader(`{"a":1}`))
	req.Header.Set("Authorization", "Bearer abc")
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "POST", got["method"])
	assert.Equal(t, "/api/laporan/admin?page=2&search=sari", got["path"])
	assert.Equal(t, "Bearer abc", got["auth"])
	assert.Equal(t, `{"a":1}`, got["body"])
}

func TestGatewayBackendMati(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	url := backend.URL
	backend.Close()

	app := New(url, "*")
	resp, err := app.Test(httptest.NewRequest("GET", "/api/laporan", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Backend tidak dapat dihubungi", body["msg"])
}

func TestGatewayHealth(t *testing.T) {
	app := New("http://localhost:5000", "*")
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
