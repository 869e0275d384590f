package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beatburn/server/internal/models"
	"github.com/beatburn/server/internal/profile"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func loginTestUser(t *testing.T, app *fiber.App) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "dancer",
		"password": "letmein",
	})
	require.Equal(t, http.StatusOK, response.StatusCode)

	var envelope struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, response, &envelope)
	require.NotEmpty(t, envelope.Token)
	require.Equal(t, "dancer", envelope.User.Username)
	return envelope.Token
}

func TestLoginAndMe(t *testing.T) {
	app, _ := newTestApp(t)
	created := createTestUser(t, app)
	token := loginTestUser(t, app)

	request := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	response, err := app.Test(request, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var me models.User
	decodeBody(t, response, &me)
	require.Equal(t, created.ID, me.ID)
}

func TestMeWithoutToken(t *testing.T) {
	app, _ := newTestApp(t)
	createTestUser(t, app)

	response := performJSON(t, app, http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusUnauthorized, response.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)
	createTestUser(t, app)

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "dancer",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, response.StatusCode)
}

func TestLoginUnknownUser(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "ghost",
		"password": "letmein",
	})
	require.Equal(t, http.StatusUnauthorized, response.StatusCode)
}

func TestLogoutClearsActiveProfile(t *testing.T) {
	app, handler := newTestApp(t)
	createTestUser(t, app)
	token := loginTestUser(t, app)

	// Login stored the active profile on disk.
	_, err := handler.profileStore.Load()
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	response, err := app.Test(request, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode)

	_, err = handler.profileStore.Load()
	require.True(t, errors.Is(err, profile.ErrNoProfile))
}
