package models

// JobState is the lifecycle state of an async extraction job.
type JobState string

const (
	JobSubmitted JobState = "submitted"
	JobSucceeded JobState = "succeeded"
	JobFailed    JobState = "failed"
	JobTimedOut  JobState = "timed_out"
)

// Terminal reports whether no further transition can occur.
func (s JobState) Terminal() bool {
	return s == JobSucceeded || s == JobFailed || s == JobTimedOut
}

// ExtractionJob tracks one async multi-page OCR job from submission to a
// terminal state. Pages holds the text of each result page in order.
type ExtractionJob struct {
	JobID string   `json:"jobId"`
	State JobState `json:"state"`
	Pages []string `json:"pages,omitempty"`
}

// JobPage is one page of async job results as returned by the provider.
type JobPage struct {
	State JobState `json:"state"`
	Lines []string `json:"lines,omitempty"`
	// NextToken continues result pagination when non-empty.
	NextToken string `json:"nextToken,omitempty"`
	// StatusMessage carries the provider's diagnostic detail on failure.
	StatusMessage string `json:"statusMessage,omitempty"`
}
