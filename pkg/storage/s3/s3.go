package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	cfg "github.com/Bassdanger/document-summarizer/config"
	"github.com/Bassdanger/document-summarizer/pkg/logger"
)

// ObjectStore reads objects from Amazon S3.
type ObjectStore struct {
	client *s3.Client
	logger logger.Logger
}

// NewObjectStore creates an S3-backed object store. An empty region falls
// back to the configured AWS region.
func NewObjectStore(ctx context.Context, region string, log logger.Logger) (*ObjectStore, error) {
	c := cfg.GetAWSConfig()
	if region == "" {
		region = c.Region
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if c.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &ObjectStore{
		client: s3.NewFromConfig(awsCfg),
		logger: log,
	}, nil
}

// Get reads a whole object.
func (s *ObjectStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("Failed to get object from S3",
			logger.String("bucket", bucket),
			logger.String("key", key),
			logger.Error(err),
		)
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return data, nil
}
