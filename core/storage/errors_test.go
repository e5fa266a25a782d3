package storage_test

import (
	"errors"
	"fmt"
	"testing"

	"storage-gateway/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, storage.MapError(nil))
	})

	t.Run("NotFoundResponse", func(t *testing.T) {
		err := minio.ErrorResponse{
			Code:       "NoSuchKey",
			Message:    "The specified key does not exist.",
			StatusCode: 404,
		}

		perr := storage.MapError(err)
		assert.Equal(t, 404, perr.StatusCode)
		assert.Equal(t, "The specified key does not exist.", perr.Message)
		assert.True(t, perr.IsNotFound())
	})

	t.Run("AccessDenied", func(t *testing.T) {
		err := minio.ErrorResponse{
			Code:       "AccessDenied",
			Message:    "Access Denied.",
			StatusCode: 403,
		}

		perr := storage.MapError(err)
		assert.Equal(t, 403, perr.StatusCode)
		assert.False(t, perr.IsNotFound())
	})

	t.Run("CodeWithoutStatus", func(t *testing.T) {
		err := minio.ErrorResponse{Code: "NoSuchBucket", Message: "bucket gone"}

		perr := storage.MapError(err)
		assert.Equal(t, 404, perr.StatusCode)
	})

	t.Run("PlainErrorDefaultsTo500", func(t *testing.T) {
		perr := storage.MapError(errors.New("connection refused"))
		assert.Equal(t, 500, perr.StatusCode)
		assert.Equal(t, "connection refused", perr.Message)
	})

	t.Run("WrappedProviderErrorPassesThrough", func(t *testing.T) {
		orig := storage.NotFound("container docs")
		wrapped := fmt.Errorf("destroy failed: %w", orig)

		perr := storage.MapError(wrapped)
		assert.Same(t, orig, perr)
	})
}

func TestNotFound(t *testing.T) {
	perr := storage.NotFound("bucket media")
	assert.Equal(t, 404, perr.StatusCode)
	assert.Equal(t, "bucket media not found", perr.Message)
	assert.Contains(t, perr.Error(), "status 404")
}
