package storage

import (
	"context"
	"fmt"

	"github.com/Bassdanger/document-summarizer/pkg/logger"
	"github.com/Bassdanger/document-summarizer/pkg/storage/minio"
	"github.com/Bassdanger/document-summarizer/pkg/storage/s3"
)

// StorageType selects the object-store backend.
type StorageType string

const (
	StorageTypeS3    StorageType = "s3"
	StorageTypeMinio StorageType = "minio"
)

// ObjectStore reads whole small objects from a bucket.
type ObjectStore interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
}

// NewObjectStore is the factory for object-store backends.
func NewObjectStore(ctx context.Context, storageType StorageType, region string, log logger.Logger) (ObjectStore, error) {
	switch storageType {
	case StorageTypeS3:
		return s3.NewObjectStore(ctx, region, log)
	case StorageTypeMinio:
		return minio.NewObjectStore(log)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}
