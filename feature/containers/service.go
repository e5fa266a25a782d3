package containers

import (
	"bytes"
	"context"
	"strings"

	"storage-gateway/core/bucketmap"
	"storage-gateway/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service implements the container and file operations on top of the
// storage client. All bucket/key composition goes through the resolver.
type Service struct {
	client   storage.Client
	resolver bucketmap.Resolver
	region   string
	logger   *zap.Logger
}

// NewService creates a new containers service. region is only used when
// creating real buckets in bucket mode.
func NewService(client storage.Client, resolver bucketmap.Resolver, region string, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		resolver: resolver,
		region:   region,
		logger:   logger,
	}
}

// validateName rejects names that cannot survive the key round-trip.
func validateName(name string) error {
	if name == "" || strings.Contains(name, "/") {
		return &storage.ProviderError{StatusCode: 400, Message: "invalid container name"}
	}
	return nil
}

// ListContainers returns every container visible to the gateway. In prefix
// mode these are the common prefixes under the fixed bucket root; in bucket
// mode, the buckets owned by the credentials.
func (s *Service) ListContainers(ctx context.Context) ([]Container, error) {
	if !s.resolver.PrefixMode() {
		buckets, err := s.client.ListBuckets(ctx)
		if err != nil {
			return nil, storage.MapError(err)
		}
		result := make([]Container, 0, len(buckets))
		for _, b := range buckets {
			result = append(result, Container{Name: b.Name})
		}
		return result, nil
	}

	bucket := s.resolver.FixedBucket
	result := []Container{}
	// Non-recursive listing groups keys by the "/" delimiter, yielding one
	// entry per top-level prefix.
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: false}) {
		if obj.Err != nil {
			return nil, storage.MapError(obj.Err)
		}
		if !strings.HasSuffix(obj.Key, "/") {
			// A loose object at the bucket root is not a container.
			continue
		}
		result = append(result, Container{Name: strings.TrimSuffix(obj.Key, "/")})
	}
	return result, nil
}

// CreateContainer creates the container. Prefix mode writes the zero-byte
// folder marker; bucket mode creates a real bucket.
func (s *Service) CreateContainer(ctx context.Context, name string) (Container, error) {
	if err := validateName(name); err != nil {
		return Container{}, err
	}

	if s.resolver.PrefixMode() {
		bucket, marker := s.resolver.MarkerKey(name)
		_, err := s.client.PutObject(ctx, bucket, marker, bytes.NewReader(nil), 0, minio.PutObjectOptions{})
		if err != nil {
			return Container{}, storage.MapError(err)
		}
	} else {
		if err := s.client.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return Container{}, storage.MapError(err)
		}
	}

	s.logger.Info("Container created", zap.String("container", name))
	return Container{Name: name}, nil
}

// GetContainer probes for the container's existence and returns it.
func (s *Service) GetContainer(ctx context.Context, name string) (Container, error) {
	if err := validateName(name); err != nil {
		return Container{}, err
	}

	if s.resolver.PrefixMode() {
		bucket, marker := s.resolver.MarkerKey(name)
		if _, err := s.client.StatObject(ctx, bucket, marker, minio.StatObjectOptions{}); err != nil {
			return Container{}, storage.MapError(err)
		}
		return Container{Name: name}, nil
	}

	exists, err := s.client.BucketExists(ctx, name)
	if err != nil {
		return Container{}, storage.MapError(err)
	}
	if !exists {
		return Container{}, storage.NotFound("container " + name)
	}
	return Container{Name: name}, nil
}

// DestroyContainer removes the container. Prefix mode first cascades a batch
// delete over every key under the prefix, folder marker included; bucket
// mode deletes the bucket outright (the provider rejects non-empty buckets).
func (s *Service) DestroyContainer(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	if !s.resolver.PrefixMode() {
		if err := s.client.RemoveBucket(ctx, name); err != nil {
			return storage.MapError(err)
		}
		s.logger.Info("Container destroyed", zap.String("container", name))
		return nil
	}

	bucket, prefix := s.resolver.ContainerPrefix(name)

	// The listing channel keeps paginating until the prefix is exhausted,
	// so the cascade covers containers of any size.
	listCh := s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	var listErr error
	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		for obj := range listCh {
			if obj.Err != nil {
				listErr = obj.Err
				return
			}
			select {
			case objectsCh <- obj:
			case <-ctx.Done():
				return
			}
		}
	}()

	for rerr := range s.client.RemoveObjects(ctx, bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			return storage.MapError(rerr.Err)
		}
	}
	if listErr != nil {
		return storage.MapError(listErr)
	}

	s.logger.Info("Container destroyed", zap.String("container", name))
	return nil
}

// ListFiles returns the metadata of every file in the container. The folder
// marker and any virtual sub-folder entries are filtered out. A positive
// limit caps the number of results; 0 means unlimited.
func (s *Service) ListFiles(ctx context.Context, container string, limit int) ([]FileMetadata, error) {
	if err := validateName(container); err != nil {
		return nil, err
	}

	bucket, prefix := s.resolver.ContainerPrefix(container)
	result := []FileMetadata{}
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}) {
		if obj.Err != nil {
			return nil, storage.MapError(obj.Err)
		}
		rel := s.resolver.RelativeName(container, obj.Key)
		// rel == "" is the container's own folder marker; a trailing slash
		// marks a virtual sub-folder grouped by the delimiter.
		if rel == "" || strings.HasSuffix(rel, "/") {
			continue
		}
		result = append(result, fileMetadataFromObject(rel, obj))
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// StatFile returns the metadata of a single file.
func (s *Service) StatFile(ctx context.Context, container, file string) (FileMetadata, error) {
	if err := validateName(container); err != nil {
		return FileMetadata{}, err
	}

	bucket, key := s.resolver.Locate(container, file)
	info, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return FileMetadata{}, storage.MapError(err)
	}
	return fileMetadataFromObject(file, info), nil
}

// RemoveFile deletes a single file. Deleting an absent key succeeds, per
// the provider's own delete semantics.
func (s *Service) RemoveFile(ctx context.Context, container, file string) error {
	if err := validateName(container); err != nil {
		return err
	}

	bucket, key := s.resolver.Locate(container, file)
	if err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return storage.MapError(err)
	}
	return nil
}
