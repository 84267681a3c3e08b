// Package bedrock implements summarization with the Amazon Bedrock
// Converse API.
package bedrock

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	cfg "github.com/Bassdanger/document-summarizer/config"
	"github.com/Bassdanger/document-summarizer/internal/summarize"
	"github.com/Bassdanger/document-summarizer/pkg/logger"
)

// DefaultModelID is used when no model is configured.
const DefaultModelID = "anthropic.claude-3-5-sonnet-20241022-v2:0"

var _ summarize.Summarizer = (*Client)(nil)

// Client calls the Bedrock runtime Converse API.
type Client struct {
	client *bedrockruntime.Client
	logger logger.Logger
}

// NewClient creates a Bedrock runtime client. An empty region falls back to
// the configured AWS region.
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
		client: bedrockruntime.NewFromConfig(awsCfg),
		logger: log,
	}, nil
}

// Summarize sends the prompt pair through Converse and concatenates the
// returned text blocks.
func (c *Client) Summarize(ctx context.Context, systemPrompt, userText string, opts summarize.Options) (string, error) {
	modelID := opts.Model
	if modelID == "" {
		modelID = DefaultModelID
	}

	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(modelID),
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: userText},
				},
			},
		},
		System: []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: systemPrompt},
		},
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(int32(opts.MaxTokens)),
			Temperature: aws.Float32(opts.Temperature),
		},
	}

	out, err := c.client.Converse(ctx, input)
	if err != nil {
		return "", fmt.Errorf("converse call failed: %w", err)
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", fmt.Errorf("unexpected converse output type %T", out.Output)
	}

	var sb strings.Builder
	for _, block := range msg.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			sb.WriteString(text.Value)
		}
	}

	c.logger.Debug("summary generated",
		logger.String("model", modelID),
		logger.Int("chars", sb.Len()),
	)
	return sb.String(), nil
}
