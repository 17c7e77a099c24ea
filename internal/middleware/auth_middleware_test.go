package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"magang-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "rahasia_test"

func token(t *testing.T, key string, id uint, role string, exp time.Duration) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": id,
		"email":   "sari@example.com",
		"role":    role,
		"exp":     time.Now().Add(exp).Unix(),
	})
	s, err := tok.SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func testApp() *fiber.App {
	app := fiber.New()
	whoami := func(c *fiber.Ctx) error {
		a := ActorFrom(c)
		return c.JSON(fiber.Map{"id": a.ID, "role": a.Role})
	}
	app.Get("/me", Auth(secret), whoami)
	app.Get("/admin", Auth(secret), AdminOnly(), whoami)
	app.Get("/optional", OptionalAuth(secret), whoami)
	return app
}

func get(t *testing.T, app *fiber.App, path, bearer string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestAuth(t *testing.T) {
	app := testApp()

	status, body := get(t, app, "/me", "")
	assert.Equal(t, 401, status)
	assert.Equal(t, "Token tidak ditemukan", body["msg"])

	status, _ = get(t, app, "/me", token(t, "kunci_lain", 1, model.RolePeserta, time.Hour))
	assert.Equal(t, 401, status)

	status, _ = get(t, app, "/me", token(t, secret, 1, model.RolePeserta, -time.Hour))
	assert.Equal(t, 401, status)

	status, body = get(t, app, "/me", token(t, secret, 7, model.RolePeserta, time.Hour))
	assert.Equal(t, 200, status)
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, model.RolePeserta, body["role"])
}

func TestAdminOnly(t *testing.T) {
	app := testApp()

	status, body := get(t, app, "/admin", token(t, secret, 7, model.RolePeserta, time.Hour))
	assert.Equal(t, 403, status)
	assert.Equal(t, "Akses ditolak: Anda bukan Admin", body["error"])

	status, _ = get(t, app, "/admin", token(t, secret, 1, model.RoleAdmin, time.Hour))
	assert.Equal(t, 200, status)
}

func TestOptionalAuth(t *testing.T) {
	app := testApp()

	status, body := get(t, app, "/optional", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, float64(0), body["id"])

	status, body = get(t, app, "/optional", "rusak")
	assert.Equal(t, 200, status)
	assert.Equal(t, "", body["role"])

	_, body = get(t, app, "/optional", token(t, secret, 3, model.RoleAdmin, time.Hour))
	assert.Equal(t, model.RoleAdmin, body["role"])
}
