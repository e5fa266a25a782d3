// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the gateway needs: bucket CRUD, object CRUD, prefix listing and
// batch deletion. This abstraction supports both AWS S3 and self-hosted MinIO
// instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Error Mapping
//
// Every provider failure is flattened into a single ProviderError carrying an
// HTTP status code and a message. MapError translates the SDK's typed
// ErrorResponse; failures without a status default to 500. HTTP handlers
// reuse the status code directly for their responses.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	info, err := client.StatObject(ctx, "assets", "docs/readme.txt", minio.StatObjectOptions{})
//	if err != nil {
//	    perr := storage.MapError(err)
//	    ...
//	}
package storage
