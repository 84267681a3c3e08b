package extract

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat marks references rejected at classification time.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrJobTimeout marks an async extraction job that never reached a terminal
// state within the allotted time. Distinct from job failure.
var ErrJobTimeout = errors.New("extraction job timed out")

// JobFailedError is a terminal job failure carrying the provider's reason.
type JobFailedError struct {
	JobID  string
	Reason string
}

func (e *JobFailedError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "unknown"
	}
	return fmt.Sprintf("extraction job %s failed: %s", e.JobID, reason)
}
