package containers

import (
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// Container represents a bucket (bucket mode) or a simulated folder prefix
// (prefix mode). Identity is the name.
type Container struct {
	Name string `json:"name"`
}

// FileMetadata is the normalized, read-only view of a stored object.
type FileMetadata struct {
	Name         string            `json:"name"`
	LastModified time.Time         `json:"lastModified"`
	ETag         string            `json:"etag"`
	Size         int64             `json:"size"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// fileMetadataFromObject maps provider object info onto the normalized
// shape. Providers return the ETag wrapped in quotes; we strip them.
func fileMetadataFromObject(name string, info minio.ObjectInfo) FileMetadata {
	meta := FileMetadata{
		Name:         name,
		LastModified: info.LastModified,
		ETag:         trimETag(info.ETag),
		Size:         info.Size,
	}
	if len(info.UserMetadata) > 0 {
		meta.Metadata = map[string]string(info.UserMetadata)
	}
	return meta
}

func trimETag(etag string) string {
	return strings.Trim(etag, `"`)
}
