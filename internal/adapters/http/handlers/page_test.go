package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"bloodlink-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendErrorWritesStatusAndEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/:status", func(c *fiber.Ctx) error {
		status, _ := strconv.Atoi(c.Params("status"))
		return sendError(c, status, "went wrong")
	})

	for _, status := range []int{
		fiber.StatusBadRequest,
		fiber.StatusNotFound,
		fiber.StatusConflict,
		fiber.StatusUnprocessableEntity,
		fiber.StatusInternalServerError,
		fiber.StatusBadGateway,
	} {
		resp, err := app.Test(httptest.NewRequest("GET", "/"+strconv.Itoa(status), nil))
		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode)

		var body response.Response
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		assert.False(t, body.Success)
		assert.Equal(t, "went wrong", body.Error)
	}
}
