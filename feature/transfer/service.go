package transfer

import (
	"context"
	"io"
	"strings"

	"storage-gateway/core/bucketmap"
	"storage-gateway/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service streams file payloads between HTTP requests and the provider.
type Service struct {
	client   storage.Client
	resolver bucketmap.Resolver
	logger   *zap.Logger
}

// NewService creates a new transfer service.
func NewService(client storage.Client, resolver bucketmap.Resolver, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		resolver: resolver,
		logger:   logger,
	}
}

// OpenUpload returns a writable handle immediately; the provider upload runs
// concurrently and consumes whatever is written until the handle is closed.
// Passing size -1 makes the SDK chunk the stream into multipart parts.
func (s *Service) OpenUpload(ctx context.Context, container, file, contentType string) *UploadHandle {
	bucket, key := s.resolver.Locate(container, file)
	pr, pw := io.Pipe()
	h := &UploadHandle{pw: pw, done: make(chan UploadResult, 1)}

	go func() {
		info, err := s.client.PutObject(ctx, bucket, key, pr, -1, minio.PutObjectOptions{
			ContentType: contentType,
		})
		if err != nil {
			// Unblock a writer still pushing bytes into the pipe.
			_ = pr.CloseWithError(err)
			h.done <- UploadResult{Container: container, Name: file, Err: storage.MapError(err)}
			return
		}
		h.done <- UploadResult{
			Container: container,
			Name:      file,
			Size:      info.Size,
			ETag:      strings.Trim(info.ETag, `"`),
		}
	}()

	return h
}

// DownloadStream is an open object read stream plus the response metadata
// the HTTP layer needs. The caller owns Body and must close it.
type DownloadStream struct {
	Body        io.ReadCloser
	Name        string
	Size        int64
	ContentType string
	ETag        string
}

// Download opens the provider's native object stream. The body is never
// buffered in memory; bytes flow from the provider straight to the reader.
func (s *Service) Download(ctx context.Context, container, file string) (*DownloadStream, error) {
	bucket, key := s.resolver.Locate(container, file)

	// Stat first so a missing object fails before any response bytes are
	// committed, and so the response can carry length and content type.
	info, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, storage.MapError(err)
	}

	body, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, storage.MapError(err)
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &DownloadStream{
		Body:        body,
		Name:        file,
		Size:        info.Size,
		ContentType: contentType,
		ETag:        strings.Trim(info.ETag, `"`),
	}, nil
}
