package containers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"storage-gateway/core/bucketmap"
	"storage-gateway/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(fixedBucket string) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, bucketmap.New(fixedBucket), "us-east-1", zap.NewNop())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func TestHandleListContainers(t *testing.T) {
	app, mockClient := setupTestApp("assets")

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "docs/"}
	ch <- minio.ObjectInfo{Key: "media/"}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []Container
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []Container{{Name: "docs"}, {Name: "media"}}, body)
}

func TestHandleCreateContainer(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		app, mockClient := setupTestApp("assets")

		mockClient.On("PutObject", mock.Anything, "assets", "docs/", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{"name":"docs"}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var body Container
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "docs", body.Name)
	})

	t.Run("EmptyName", func(t *testing.T) {
		app, _ := setupTestApp("assets")

		req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{"name":""}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		app, _ := setupTestApp("assets")

		req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleGetContainer_NotFound(t *testing.T) {
	app, mockClient := setupTestApp("assets")

	mockClient.On("StatObject", mock.Anything, "assets", "ghost/", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", Message: "missing", StatusCode: 404})

	resp, err := app.Test(httptest.NewRequest("GET", "/ghost", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "missing", body["message"])
	assert.Equal(t, float64(404), body["statusCode"])
}

func TestHandleDestroyContainer(t *testing.T) {
	app, mockClient := setupTestApp("")

	mockClient.On("RemoveBucket", mock.Anything, "docs").Return(nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestHandleListFiles(t *testing.T) {
	app, mockClient := setupTestApp("assets")

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "docs/"}
	ch <- minio.ObjectInfo{Key: "docs/readme.txt", Size: 11, ETag: `"abc123"`}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(httptest.NewRequest("GET", "/docs/files", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []FileMetadata
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "readme.txt", body[0].Name)
	assert.Equal(t, "abc123", body[0].ETag)
}

func TestHandleGetFile(t *testing.T) {
	app, mockClient := setupTestApp("assets")

	mockClient.On("StatObject", mock.Anything, "assets", "docs/readme.txt", mock.Anything).
		Return(minio.ObjectInfo{Key: "docs/readme.txt", Size: 11, ETag: `"abc123"`}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs/files/readme.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body FileMetadata
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "readme.txt", body.Name)
	assert.Equal(t, int64(11), body.Size)
}

func TestHandleGetFile_EncodedSlash(t *testing.T) {
	app, mockClient := setupTestApp("assets")

	mockClient.On("StatObject", mock.Anything, "assets", "docs/sub/data.bin", mock.Anything).
		Return(minio.ObjectInfo{Key: "docs/sub/data.bin", Size: 3}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs/files/sub%2Fdata.bin", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestHandleRemoveFile(t *testing.T) {
	app, mockClient := setupTestApp("assets")

	mockClient.On("RemoveObject", mock.Anything, "assets", "docs/readme.txt", mock.Anything).Return(nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/docs/files/readme.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	mockClient.AssertExpectations(t)
}
