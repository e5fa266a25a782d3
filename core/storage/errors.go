package storage

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/minio/minio-go/v7"
)

// ProviderError is the single error shape surfaced by every storage
// operation. Whatever the provider failure was (network, auth, not-found,
// quota), callers only see an HTTP-ish status code and a message.
type ProviderError struct {
	// StatusCode is the HTTP status reported by the provider,
	// or 500 when the failure carried none.
	StatusCode int
	// Message is the provider's error message.
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the error represents a missing object or bucket.
func (e *ProviderError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// MapError translates any provider-layer failure into a *ProviderError.
// Minio exposes a typed ErrorResponse for S3-protocol errors; anything else
// (transport failures, context cancellation) defaults to status 500.
func MapError(err error) *ProviderError {
	if err == nil {
		return nil
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}

	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		status := resp.StatusCode
		if status == 0 {
			// Some S3 error codes arrive without a transport status
			switch resp.Code {
			case "NoSuchBucket", "NoSuchKey", "NoSuchUpload":
				status = http.StatusNotFound
			case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
				status = http.StatusForbidden
			default:
				status = http.StatusInternalServerError
			}
		}
		msg := resp.Message
		if msg == "" {
			msg = resp.Code
		}
		return &ProviderError{StatusCode: status, Message: msg}
	}

	return &ProviderError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
}

// NotFound builds the ProviderError used when an existence probe comes back
// negative without an underlying SDK error (e.g. BucketExists returning false).
func NotFound(what string) *ProviderError {
	return &ProviderError{StatusCode: http.StatusNotFound, Message: what + " not found"}
}
