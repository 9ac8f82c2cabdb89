package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"product-auth-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrantApp() *fiber.App {
	app := fiber.New()
	SetupGamificationRoutes(app, services.NewGamificationService(nil))
	return app
}

func postGrant(t *testing.T, app *fiber.App, body fiber.Map) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/s/admin/points/grant", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "admin-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGrantRejectsNonPositivePoints(t *testing.T) {
	app := newGrantApp()

	// Zero and negative grants would shrink a user's total; both must be
	// rejected before the award path runs.
	for _, points := range []int64{0, -100} {
		resp := postGrant(t, app, fiber.Map{
			"user_id": "9f1b2c3d-0000-0000-0000-000000000001",
			"points":  points,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "points=%d", points)
	}
}

func TestGrantRequiresUserID(t *testing.T) {
	resp := postGrant(t, newGrantApp(), fiber.Map{"points": 10})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGrantRequiresUserContext(t *testing.T) {
	app := newGrantApp()

	req := httptest.NewRequest("POST", "/s/admin/points/grant", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
