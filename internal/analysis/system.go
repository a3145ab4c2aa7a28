package analysis

import "context"

// System defines the public contract for the submission pipeline.
type System interface {
	Handler(maxUploadSize int64) *Handler

	// Submit analyzes and logs a submission. It returns ErrEmptySubmission,
	// without logging anything, when the submission has no content.
	Submit(ctx context.Context, sub Submission) (*Outcome, error)
}

// Classifier tags text with a joined department string.
type Classifier interface {
	Classify(text string) string
}
