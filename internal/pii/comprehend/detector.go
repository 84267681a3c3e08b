// Package comprehend implements entity detection with Amazon Comprehend.
package comprehend

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/comprehend/types"

	cfg "github.com/Bassdanger/document-summarizer/config"
	"github.com/Bassdanger/document-summarizer/internal/models"
	"github.com/Bassdanger/document-summarizer/internal/pii"
	"github.com/Bassdanger/document-summarizer/pkg/logger"
)

// MaxRequestBytes is the DetectPiiEntities sync API limit per request.
// Chunk sizes must stay under it.
const MaxRequestBytes = 5000

var _ pii.EntityDetector = (*Detector)(nil)

// Detector calls Comprehend DetectPiiEntities.
type Detector struct {
	client *comprehend.Client
	logger logger.Logger
}

// NewDetector creates a Comprehend-backed detector. An empty region falls
// back to the configured AWS region.
func NewDetector(ctx context.Context, region string, log logger.Logger) (*Detector, error) {
	awsCfg, err := loadAWSConfig(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	return &Detector{
		client: comprehend.NewFromConfig(awsCfg),
		logger: log,
	}, nil
}

// DetectEntities returns PII spans local to the submitted text.
func (d *Detector) DetectEntities(ctx context.Context, text, languageCode string) ([]models.Span, error) {
	out, err := d.client.DetectPiiEntities(ctx, &comprehend.DetectPiiEntitiesInput{
		Text:         aws.String(text),
		LanguageCode: types.LanguageCode(languageCode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect entities: %w", err)
	}

	spans := make([]models.Span, 0, len(out.Entities))
	for _, ent := range out.Entities {
		if ent.BeginOffset == nil || ent.EndOffset == nil {
			continue
		}
		spans = append(spans, models.Span{
			Start: int(*ent.BeginOffset),
			End:   int(*ent.EndOffset),
		})
	}

	d.logger.Debug("detected entities",
		logger.Int("count", len(spans)),
		logger.Int("textChars", len([]rune(text))),
	)
	return spans, nil
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
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

	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
