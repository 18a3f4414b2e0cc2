package controllers_test

import (
	"errors"
	"testing"

	"learnscripting/backend/models"
	"learnscripting/backend/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	store := storage.NewMemStore()
	app := newTestApp(store)

	resp := postJSON(t, app, "/api/register", map[string]string{
		"username": "ann",
		"email":    "a@x.com",
		"password": "p",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, true, result["success"])

	user := result["user"].(map[string]interface{})
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "ann", user["username"])
	assert.Equal(t, "a@x.com", user["email"])

	// The password never appears in the response
	assert.NotContains(t, user, "password")

	assert.Len(t, store.Users, 1)
	assert.Empty(t, store.Users[0].Progress.Python.Lessons)
	assert.Empty(t, store.Users[0].Progress.Javascript.Quizzes)
}

func TestRegisterUsernameTooShort(t *testing.T) {
	store := storage.NewMemStore()
	app := newTestApp(store)

	resp := postJSON(t, app, "/api/register", map[string]string{
		"username": "ab",
		"email":    "ab@x.com",
		"password": "secret",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Nazwa musi mieć minimum 3 znaki", decodeBody(t, resp)["error"])
	assert.Empty(t, store.Users)
}

func TestRegisterEmptyUsername(t *testing.T) {
	store := storage.NewMemStore()
	app := newTestApp(store)

	resp := postJSON(t, app, "/api/register", map[string]string{
		"username": "   ",
		"password": "secret",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Podaj nazwę użytkownika", decodeBody(t, resp)["error"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := storage.NewMemStore()
	app := newTestApp(store)

	resp := postJSON(t, app, "/api/register", map[string]string{
		"username": "ann", "email": "a@x.com", "password": "p",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/api/register", map[string]string{
		"username": "ann", "email": "other@x.com", "password": "q",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Nazwa już zajęta", decodeBody(t, resp)["error"])

	// Second attempt must not grow the store
	assert.Len(t, store.Users, 1)
}

func TestRegisterSaveFailure(t *testing.T) {
	store := storage.NewMemStore()
	store.SaveErr = errors.New("disk full")
	app := newTestApp(store)

	resp := postJSON(t, app, "/api/register", map[string]string{
		"username": "ann", "email": "a@x.com", "password": "p",
	})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Błąd zapisu użytkownika", decodeBody(t, resp)["error"])
	assert.Empty(t, store.Users)
}

func TestLogin(t *testing.T) {
	store := storage.NewMemStore()
	store.Users = []models.User{{
		ID:       1,
		Username: "ann",
		Email:    "a@x.com",
		Password: "p",
		Progress: models.NewProgress(),
	}}
	app := newTestApp(store)

	resp := postJSON(t, app, "/api/login", map[string]string{
		"username": "ann",
		"password": "p",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, true, result["success"])
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "ann", user["username"])

	// last_login refreshed and persisted
	assert.Greater(t, store.Users[0].LastLogin, 0.0)
}

func TestLoginBadCredentials(t *testing.T) {
	store := storage.NewMemStore()
	store.Users = []models.User{{
		ID:       1,
		Username: "ann",
		Password: "p",
		Progress: models.NewProgress(),
	}}
	app := newTestApp(store)

	// Wrong password and unknown user answer identically
	wrongPassword := postJSON(t, app, "/api/login", map[string]string{
		"username": "ann", "password": "nope",
	})
	unknownUser := postJSON(t, app, "/api/login", map[string]string{
		"username": "ghost", "password": "p",
	})

	assert.Equal(t, fiber.StatusUnauthorized, wrongPassword.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, unknownUser.StatusCode)
	assert.Equal(t, decodeBody(t, wrongPassword), decodeBody(t, unknownUser))
}

func TestLoginMissingFields(t *testing.T) {
	store := storage.NewMemStore()
	app := newTestApp(store)

	resp := postJSON(t, app, "/api/login", map[string]string{
		"username": "ann",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Podaj nazwę i hasło", decodeBody(t, resp)["error"])
}
