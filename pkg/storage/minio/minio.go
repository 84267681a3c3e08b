package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	cfg "github.com/Bassdanger/document-summarizer/config"
	"github.com/Bassdanger/document-summarizer/pkg/logger"
)

// ObjectStore reads objects from a MinIO / S3-compatible endpoint.
type ObjectStore struct {
	client *minio.Client
	logger logger.Logger
}

// NewObjectStore creates a MinIO-backed object store from configuration.
func NewObjectStore(log logger.Logger) (*ObjectStore, error) {
	minioCfg := cfg.GetMinioConfig()

	client, err := minio.New(minioCfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioCfg.AccessKey, minioCfg.SecretKey, ""),
		Secure: minioCfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &ObjectStore{
		client: client,
		logger: log,
	}, nil
}

// Get reads a whole object.
func (m *ObjectStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		m.logger.Error("Failed to get object from MinIO",
			logger.String("bucket", bucket),
			logger.String("key", key),
			logger.Error(err),
		)
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return data, nil
}
