package modelbind_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"model-binder/core/storage"
	"model-binder/core/storage/mocks"
	"model-binder/feature/modelbind"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bindResponse struct {
	Model    string           `json:"model"`
	Value    map[string]any   `json:"value"`
	Problems []map[string]any `json:"problems"`
	Error    string           `json:"error"`
}

func setupApp(client *mocks.Client) *fiber.App {
	app := fiber.New()
	feature := modelbind.NewFeature(client, storage.Config{Bucket: "documents", Prefix: "envs"}, zap.NewNop())
	if err := feature.Load(app); err != nil {
		panic(err)
	}
	return app
}

func decode(t *testing.T, body io.Reader) bindResponse {
	var out bindResponse
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestHandleBind(t *testing.T) {
	app := setupApp(new(mocks.Client))

	t.Run("JSON Body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/bind/server", strings.NewReader(`{"port":"9090","body_limit_bytes":"lots"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		out := decode(t, resp.Body)
		assert.Equal(t, "server", out.Model)
		assert.Equal(t, "9090", out.Value["Port"])
		require.Len(t, out.Problems, 1)
		assert.Equal(t, "*server.Config", out.Problems[0]["item_type"])
	})

	t.Run("Query Falls Through", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/bind/log?level=warn&format=console", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		out := decode(t, resp.Body)
		assert.Equal(t, "warn", out.Value["Level"])
		assert.Equal(t, "console", out.Value["Format"])
		assert.Empty(t, out.Problems)
	})

	t.Run("Body Wins Over Query", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/bind/log?level=warn", strings.NewReader("level: error\n"))
		req.Header.Set("Content-Type", "application/yaml")

		resp, err := app.Test(req)
		require.NoError(t, err)

		out := decode(t, resp.Body)
		assert.Equal(t, "error", out.Value["Level"])
	})

	t.Run("Unknown Model", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/bind/nope", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/bind/server", strings.NewReader(`{"port": [`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleBindObject(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "documents", "envs/prod/db.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"host":"db.internal","port":3307}`)), nil)
	app := setupApp(client)

	resp, err := app.Test(httptest.NewRequest("GET", "/bind/database/object/prod/db.json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode(t, resp.Body)
	assert.Equal(t, "db.internal", out.Value["Host"])
	assert.EqualValues(t, 3307, out.Value["Port"])
	client.AssertExpectations(t)
}

func TestHandleListModels(t *testing.T) {
	app := setupApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/bind", nil))
	require.NoError(t, err)

	var out struct {
		Models []string `json:"models"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.Models, "server")
}

func TestHandleBindObject_Errors(t *testing.T) {
	t.Run("Missing Object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "documents", "envs/gone.yaml", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})
		app := setupApp(client)

		resp, err := app.Test(httptest.NewRequest("GET", "/bind/server/object/gone.yaml", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Storage Not Configured", func(t *testing.T) {
		app := fiber.New()
		require.NoError(t, modelbind.NewFeature(nil, storage.Config{Bucket: "documents"}, zap.NewNop()).Load(app))

		resp, err := app.Test(httptest.NewRequest("GET", "/bind/server/object/a.yaml", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "documents", "envs/a.yaml", mock.Anything).
			Return(nil, errors.New("connection reset"))
		app := setupApp(client)

		resp, err := app.Test(httptest.NewRequest("GET", "/bind/server/object/a.yaml", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
