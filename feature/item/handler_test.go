package item

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"pss-assistant/core/entity"
	"pss-assistant/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *fiber.App {
	app := fiber.New(server.AppConfig())
	svc, _ := setupService(t)
	NewHandler(svc, server.Config{Format: server.FormatEmbed}).RegisterRoutes(app)
	return app
}

func TestHandleGetItemDetails(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/items/helmet", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body entity.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Found)
	assert.Len(t, body.Embeds, 1)

	resp, err = app.Test(httptest.NewRequest("GET", "/items/helmet?format=text", nil))
	require.NoError(t, err)
	body = entity.Result{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "**Steel Helmet**", body.Lines[0])
}

func TestHandleGetItemDetails_EscapedName(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/items/Steel%20Helmet?format=text", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body entity.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "**Steel Helmet**", body.Lines[0])
}

func TestHandleGetItemDetails_Statuses(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/items/zzz", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/items/z", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	svc, _ := setupService(t)
	feature := NewFeature(svc.Retriever(), server.Config{}, nil)

	assert.Equal(t, "items", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())
	assert.NoError(t, feature.Load(fiber.New()))
}
