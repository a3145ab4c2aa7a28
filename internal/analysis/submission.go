// Package analysis implements the submission pipeline for newsdesk:
// OCR, language normalization, sentiment tagging, department
// classification, and logging of the verified result.
package analysis

import (
	"fmt"

	"github.com/JaimeStill/newsdesk/internal/sentiment"
	"github.com/JaimeStill/newsdesk/internal/verification"
)

// TextSource labels submissions that carry typed text only.
const TextSource = "Text Input"

// Submission is one inbound analysis request. Text and Image are both
// optional, but at least one must yield non-blank text.
type Submission struct {
	Text        string
	Image       []byte
	Filename    string
	ContentType string
}

// HasImage reports whether an image was attached.
func (s Submission) HasImage() bool {
	return len(s.Image) > 0
}

// Outcome is the result of a successful submission.
// Text echoes the submitted (untranslated) text that was logged.
type Outcome struct {
	Record      verification.Record `json:"record"`
	Message     string              `json:"message"`
	Sentiment   sentiment.Label     `json:"sentiment"`
	Departments string              `json:"departments"`
	Source      string              `json:"source"`
	Text        string              `json:"text"`
	Language    string              `json:"language"`
	UploadKey   string              `json:"upload_key,omitempty"`
}

// Advisory formats the user-facing verdict for a sentiment label.
func Advisory(label sentiment.Label) string {
	action := "No action required."
	if label.ActionRequired() {
		action = "Action required."
	}
	return fmt.Sprintf("%s news - %s", label, action)
}
