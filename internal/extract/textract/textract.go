// Package textract implements the document-text capabilities with Amazon
// Textract: synchronous single-page detection and the asynchronous
// multi-page job API.
package textract

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	cfg "github.com/Bassdanger/document-summarizer/config"
	"github.com/Bassdanger/document-summarizer/internal/extract"
	"github.com/Bassdanger/document-summarizer/internal/models"
	"github.com/Bassdanger/document-summarizer/pkg/logger"
)

var (
	_ extract.SyncDetector  = (*Client)(nil)
	_ extract.AsyncDetector = (*Client)(nil)
)

// Client calls the Textract text-detection APIs.
type Client struct {
	client *textract.Client
	logger logger.Logger
}

// NewClient creates a Textract client. An empty region falls back to the
// configured AWS region.
func NewClient(ctx context.Context, region string, log logger.Logger) (*Client, error) {
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
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	return &Client{
		client: textract.NewFromConfig(awsCfg),
		logger: log,
	}, nil
}

// DetectText runs synchronous single-page text detection on raw bytes and
// returns LINE blocks in reading order.
func (c *Client) DetectText(ctx context.Context, data []byte) ([]string, error) {
	out, err := c.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{
			Bytes: data,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect document text: %w", err)
	}
	return linesFromBlocks(out.Blocks), nil
}

// Submit starts an async text-detection job for an object-store document.
func (c *Client) Submit(ctx context.Context, bucket, key string) (string, error) {
	out, err := c.client.StartDocumentTextDetection(ctx, &textract.StartDocumentTextDetectionInput{
		DocumentLocation: &types.DocumentLocation{
			S3Object: &types.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(key),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to start text detection: %w", err)
	}
	return aws.ToString(out.JobId), nil
}

// Status reports the job state and one page of results. An empty nextToken
// fetches the first page.
func (c *Client) Status(ctx context.Context, jobID, nextToken string) (*models.JobPage, error) {
	input := &textract.GetDocumentTextDetectionInput{
		JobId: aws.String(jobID),
	}
	if nextToken != "" {
		input.NextToken = aws.String(nextToken)
	}

	out, err := c.client.GetDocumentTextDetection(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get text detection: %w", err)
	}

	page := &models.JobPage{
		Lines:         linesFromBlocks(out.Blocks),
		NextToken:     aws.ToString(out.NextToken),
		StatusMessage: aws.ToString(out.StatusMessage),
	}

	switch out.JobStatus {
	case types.JobStatusSucceeded:
		page.State = models.JobSucceeded
	case types.JobStatusFailed:
		page.State = models.JobFailed
	default:
		page.State = models.JobSubmitted
	}
	return page, nil
}

// linesFromBlocks keeps LINE blocks in order, matching the provider's
// reading order for the page.
func linesFromBlocks(blocks []types.Block) []string {
	var lines []string
	for _, block := range blocks {
		if block.BlockType == types.BlockTypeLine && block.Text != nil {
			lines = append(lines, *block.Text)
		}
	}
	return lines
}
