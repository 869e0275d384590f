package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/beatburn/server/internal/db"
	"github.com/beatburn/server/internal/models"
	"github.com/beatburn/server/internal/profile"
	"github.com/beatburn/server/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenMemory()
	require.NoError(t, err)

	// A day-long interval keeps the session ticker quiet during tests.
	manager := session.NewManagerWithInterval(24 * time.Hour)
	t.Cleanup(manager.Close)

	store := profile.NewStore(filepath.Join(t.TempDir(), "profile.json"))
	handler := NewHandler(database, "test-secret", manager, store)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	require.NoError(t, json.NewDecoder(response.Body).Decode(target))
}

func onboardingPayload() fiber.Map {
	return fiber.Map{
		"username":   "dancer",
		"password":   "letmein",
		"name":       "Dana",
		"age":        25,
		"gender":     "Female",
		"height":     175.0,
		"weight":     70.0,
		"goal":       "Weight Loss",
		"danceStyle": "Zumba",
	}
}

func createTestUser(t *testing.T, app *fiber.App) models.User {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/users", onboardingPayload())
	require.Equal(t, http.StatusCreated, response.StatusCode)

	var user models.User
	decodeBody(t, response, &user)
	return user
}
