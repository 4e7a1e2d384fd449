package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yashmaurya7/ecommerce-website/repository"
	"github.com/Yashmaurya7/ecommerce-website/responses"
)

func userApp() (*fiber.App, *repository.MemoryUserRepository) {
	users := repository.NewMemoryUserRepository()
	uc := NewUserController(users, "test-secret")

	app := fiber.New(fiber.Config{ErrorHandler: responses.ErrorHandler})
	app.Post("/register", uc.Register)
	app.Post("/login", uc.Login)
	return app, users
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	decoded := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	resp.Body.Close()
	return resp, decoded
}

func TestRegisterIssuesToken(t *testing.T) {
	app, _ := userApp()

	resp, body := postJSON(t, app, "/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "correcthorse",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, _ := userApp()

	payload := map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "correcthorse",
	}
	resp, _ := postJSON(t, app, "/register", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, app, "/register", payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestLogin(t *testing.T) {
	app, _ := userApp()

	resp, _ := postJSON(t, app, "/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "correcthorse",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, app, "/login", map[string]string{
		"email":    "alice@example.com",
		"password": "correcthorse",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])

	resp, body = postJSON(t, app, "/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}
