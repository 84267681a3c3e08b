package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Bassdanger/document-summarizer/internal/models"
	"github.com/Bassdanger/document-summarizer/pkg/logger"
)

// SyncDetector is the single-page document-text capability.
type SyncDetector interface {
	DetectText(ctx context.Context, data []byte) ([]string, error)
}

// AsyncDetector is the multi-page document-text capability. Submit starts a
// job against an object-store document; Status reports the job state and,
// once succeeded, one page of results per call with a continuation token.
type AsyncDetector interface {
	Submit(ctx context.Context, bucket, key string) (string, error)
	Status(ctx context.Context, jobID, nextToken string) (*models.JobPage, error)
}

// PollConfig bounds the async job wait loop.
type PollConfig struct {
	Interval time.Duration
	Timeout  time.Duration
}

// DefaultPollConfig matches the provider's recommended polling cadence.
func DefaultPollConfig() PollConfig {
	return PollConfig{
		Interval: 2 * time.Second,
		Timeout:  5 * time.Minute,
	}
}

// PollJob submits an async extraction job and drives it to a terminal
// state: poll at a fixed interval until success, failure, cancellation or
// the deadline. On success all result pages are fetched in order. The
// returned job always carries a terminal state.
func PollJob(ctx context.Context, det AsyncDetector, bucket, key string, cfg PollConfig, log logger.Logger) (*models.ExtractionJob, error) {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollConfig().Interval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultPollConfig().Timeout
	}

	jobID, err := det.Submit(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("failed to submit extraction job: %w", err)
	}

	job := &models.ExtractionJob{
		JobID: jobID,
		State: models.JobSubmitted,
	}
	log.Info("extraction job submitted",
		logger.String("jobId", jobID),
		logger.Duration("timeout", cfg.Timeout),
	)

	deadline := time.Now().Add(cfg.Timeout)
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := det.Status(ctx, jobID, "")
		if err != nil {
			return nil, fmt.Errorf("failed to get job status: %w", err)
		}

		switch page.State {
		case models.JobSucceeded:
			if err := collectPages(ctx, det, job, page); err != nil {
				return nil, err
			}
			job.State = models.JobSucceeded
			log.Info("extraction job succeeded",
				logger.String("jobId", jobID),
				logger.Int("pages", len(job.Pages)),
			)
			return job, nil

		case models.JobFailed:
			job.State = models.JobFailed
			return nil, &JobFailedError{JobID: jobID, Reason: page.StatusMessage}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.Interval):
		}
	}

	job.State = models.JobTimedOut
	return nil, fmt.Errorf("job %s did not complete within %s: %w", jobID, cfg.Timeout, ErrJobTimeout)
}

// collectPages appends the first result page and follows continuation
// tokens until exhausted, preserving page order.
func collectPages(ctx context.Context, det AsyncDetector, job *models.ExtractionJob, first *models.JobPage) error {
	job.Pages = append(job.Pages, strings.Join(first.Lines, "\n"))

	token := first.NextToken
	for token != "" {
		page, err := det.Status(ctx, job.JobID, token)
		if err != nil {
			return fmt.Errorf("failed to fetch result page: %w", err)
		}
		job.Pages = append(job.Pages, strings.Join(page.Lines, "\n"))
		token = page.NextToken
	}
	return nil
}
