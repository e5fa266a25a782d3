package transfer

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"storage-gateway/core/bucketmap"
	"storage-gateway/core/storage"
	"storage-gateway/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(fixedBucket string) (*Service, *mocks.Client) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, bucketmap.New(fixedBucket), zap.NewNop())
	return svc, mockClient
}

func TestOpenUpload_StreamsToProvider(t *testing.T) {
	svc, mockClient := newTestService("assets")
	payload := []byte("hello streaming world")

	var received []byte
	mockClient.On("PutObject", mock.Anything, "assets", "docs/readme.txt", mock.Anything, int64(-1), mock.Anything).
		Run(func(args mock.Arguments) {
			received, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{Bucket: "assets", Key: "docs/readme.txt", Size: int64(len(payload)), ETag: `"abc123"`}, nil)

	handle := svc.OpenUpload(context.Background(), "docs", "readme.txt", "text/plain")

	n, err := handle.Write(payload)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	require.NoError(t, handle.Close())

	result := <-handle.Done()
	require.NoError(t, result.Err)
	assert.Equal(t, "docs", result.Container)
	assert.Equal(t, "readme.txt", result.Name)
	assert.Equal(t, int64(len(payload)), result.Size)
	assert.Equal(t, "abc123", result.ETag)
	assert.Equal(t, payload, received)
}

func TestOpenUpload_CompletionFiresOnce(t *testing.T) {
	svc, mockClient := newTestService("")

	mockClient.On("PutObject", mock.Anything, "docs", "readme.txt", mock.Anything, int64(-1), mock.Anything).
		Run(func(args mock.Arguments) {
			_, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{Size: 0, ETag: `"e"`}, nil)

	handle := svc.OpenUpload(context.Background(), "docs", "readme.txt", "")
	require.NoError(t, handle.Close())

	<-handle.Done()

	// Exactly one result is delivered; the channel stays open but silent.
	select {
	case r := <-handle.Done():
		t.Fatalf("unexpected second completion: %+v", r)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestOpenUpload_ProviderFailure(t *testing.T) {
	svc, mockClient := newTestService("assets")

	mockClient.On("PutObject", mock.Anything, "assets", "docs/readme.txt", mock.Anything, int64(-1), mock.Anything).
		Return(minio.UploadInfo{}, minio.ErrorResponse{Code: "AccessDenied", Message: "denied", StatusCode: 403})

	handle := svc.OpenUpload(context.Background(), "docs", "readme.txt", "")

	result := <-handle.Done()
	require.Error(t, result.Err)
	perr := storage.MapError(result.Err)
	assert.Equal(t, 403, perr.StatusCode)
}

func TestOpenUpload_AbortPropagates(t *testing.T) {
	svc, mockClient := newTestService("assets")

	mockClient.On("PutObject", mock.Anything, "assets", "docs/readme.txt", mock.Anything, int64(-1), mock.Anything).
		Run(func(args mock.Arguments) {
			_, err := io.ReadAll(args.Get(3).(io.Reader))
			// The pipe surfaces the abort reason to the provider side.
			assert.Error(t, err)
		}).
		Return(minio.UploadInfo{}, assert.AnError)

	handle := svc.OpenUpload(context.Background(), "docs", "readme.txt", "")
	handle.Abort(assert.AnError)

	result := <-handle.Done()
	require.Error(t, result.Err)
}

func TestDownload(t *testing.T) {
	t.Run("StreamsBody", func(t *testing.T) {
		svc, mockClient := newTestService("assets")
		payload := []byte("file content")

		mockClient.On("StatObject", mock.Anything, "assets", "docs/readme.txt", mock.Anything).
			Return(minio.ObjectInfo{
				Key:         "docs/readme.txt",
				Size:        int64(len(payload)),
				ETag:        `"abc123"`,
				ContentType: "text/plain",
			}, nil)
		mockClient.On("GetObject", mock.Anything, "assets", "docs/readme.txt", mock.Anything).
			Return(io.NopCloser(bytes.NewReader(payload)), nil)

		stream, err := svc.Download(context.Background(), "docs", "readme.txt")
		require.NoError(t, err)
		defer stream.Body.Close()

		assert.Equal(t, "readme.txt", stream.Name)
		assert.Equal(t, int64(len(payload)), stream.Size)
		assert.Equal(t, "text/plain", stream.ContentType)
		assert.Equal(t, "abc123", stream.ETag)

		body, err := io.ReadAll(stream.Body)
		require.NoError(t, err)
		assert.Equal(t, payload, body)
	})

	t.Run("ContentTypeDefaultsToBinary", func(t *testing.T) {
		svc, mockClient := newTestService("")

		mockClient.On("StatObject", mock.Anything, "docs", "blob", mock.Anything).
			Return(minio.ObjectInfo{Key: "blob", Size: 1}, nil)
		mockClient.On("GetObject", mock.Anything, "docs", "blob", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte{0x1})), nil)

		stream, err := svc.Download(context.Background(), "docs", "blob")
		require.NoError(t, err)
		defer stream.Body.Close()
		assert.Equal(t, "application/octet-stream", stream.ContentType)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, mockClient := newTestService("assets")

		mockClient.On("StatObject", mock.Anything, "assets", "docs/ghost.txt", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", Message: "missing", StatusCode: 404})

		_, err := svc.Download(context.Background(), "docs", "ghost.txt")
		perr := storage.MapError(err)
		assert.Equal(t, 404, perr.StatusCode)
	})
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	// Bytes written through the upload sink come back identical through the
	// download stream.
	svc, mockClient := newTestService("assets")
	payload := bytes.Repeat([]byte("0123456789abcdef"), 4096) // 64 KiB

	var stored []byte
	mockClient.On("PutObject", mock.Anything, "assets", "docs/data.bin", mock.Anything, int64(-1), mock.Anything).
		Run(func(args mock.Arguments) {
			stored, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{Size: int64(len(payload)), ETag: `"rt"`}, nil)

	handle := svc.OpenUpload(context.Background(), "docs", "data.bin", "")
	_, err := io.Copy(handle, bytes.NewReader(payload))
	require.NoError(t, err)
	require.NoError(t, handle.Close())
	result := <-handle.Done()
	require.NoError(t, result.Err)

	mockClient.On("StatObject", mock.Anything, "assets", "docs/data.bin", mock.Anything).
		Return(minio.ObjectInfo{Key: "docs/data.bin", Size: int64(len(stored))}, nil)
	mockClient.On("GetObject", mock.Anything, "assets", "docs/data.bin", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(stored)), nil)

	stream, err := svc.Download(context.Background(), "docs", "data.bin")
	require.NoError(t, err)
	defer stream.Body.Close()

	fetched, err := io.ReadAll(stream.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, fetched)
}
