package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnscripting/backend/config"
	"learnscripting/backend/routes"
	"learnscripting/backend/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestApp(store storage.Store) *fiber.App {
	cfg := &config.Config{ServerPort: "5000"}

	app := fiber.New(fiber.Config{
		ErrorHandler: routes.ErrorHandler,
	})
	routes.SetupRoutes(app, store, cfg)

	return app
}

func getRequest(t *testing.T, app *fiber.App, path string) *http.Response {
	req := httptest.NewRequest("GET", path, nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	data, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	var result map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&result)
	assert.NoError(t, err)
	return result
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	var result []map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&result)
	assert.NoError(t, err)
	return result
}
