package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"go-inventory-api/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	app := fiber.New()
	app.Get("/stock", func(c *fiber.Ctx) error {
		return respondError(c, &apperr.InsufficientStockError{Current: 4, Requested: 100})
	})
	app.Get("/notfound", func(c *fiber.Ctx) error {
		return respondError(c, apperr.NewNotFound("product"))
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return respondError(c, errors.New("pq: connection refused"))
	})

	t.Run("insufficient stock carries structured details", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/stock", nil))
		require.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)

		var payload struct {
			Error   string `json:"error"`
			Details struct {
				CurrentStock int `json:"current_stock"`
				Requested    int `json:"requested"`
			} `json:"details"`
		}
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &payload))

		assert.Equal(t, "insufficient stock: current stock 4, requested 100", payload.Error)
		assert.Equal(t, 4, payload.Details.CurrentStock)
		assert.Equal(t, 100, payload.Details.Requested)
	})

	t.Run("not found maps to 404 without details", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/notfound", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"product not found"}`, string(body))
	})

	t.Run("internal errors are masked", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/internal", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "connection refused")
	})
}
