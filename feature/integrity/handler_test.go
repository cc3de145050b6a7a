package integrity

import (
	"net/http/httptest"
	"testing"

	"aoe4-sync/core/storage/mocks"
	syncer "aoe4-sync/feature/sync"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	archive := syncer.NewArchive(mockClient, "test-bucket", zap.NewNop())
	handler := NewHandler(NewService(setupDB(t), archive, zap.NewNop()))
	handler.RegisterRoutes(app)
	return app, mockClient
}

func getBody(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleSchemaCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := getBody(t, app, "/integrity/schema")
	assert.Equal(t, 200, status)
	assert.Equal(t, false, body["matched"])

	status, body = getBody(t, app, "/integrity/schema?fix=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["matched"])
}

func TestHandleArchiveCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

	status, body := getBody(t, app, "/integrity/archive")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["exists"])
	assert.Equal(t, "test-bucket", body["bucket"])
}

func TestHandleArchiveCheck_Error(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	status, body := getBody(t, app, "/integrity/archive")
	assert.Equal(t, 500, status)
	assert.Contains(t, body["error"], "archive check failed")
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	status, body := getBody(t, app, "/integrity")
	assert.Equal(t, 200, status)
	require.Contains(t, body, "schema")
	require.Contains(t, body, "archive")

	archive := body["archive"].(map[string]any)
	assert.Equal(t, false, archive["exists"])
	mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}
