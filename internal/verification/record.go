// Package verification implements the verification log for newsdesk.
// It owns the append-only record store and the read-only department and
// statistics projections computed from it.
package verification

import (
	"time"

	"github.com/JaimeStill/newsdesk/internal/departments"
	"github.com/JaimeStill/newsdesk/internal/sentiment"
)

// Record is one analyzed submission. Snippet holds the original text as
// submitted, before any translation. ID and Order are assigned by the store
// when the record is appended and never change afterward.
type Record struct {
	ID          int             `json:"id"`
	Snippet     string          `json:"snippet"`
	Sentiment   sentiment.Label `json:"sentiment"`
	Polarity    float64         `json:"polarity"`
	Departments string          `json:"departments"`
	Timestamp   time.Time       `json:"timestamp"`
	Source      string          `json:"source"`
	Language    string          `json:"language"`
	Order       int             `json:"order"`
	HourOfDay   int             `json:"hour_of_day"`
}

// DepartmentNames returns the lower-cased department names tagged on the
// record, excluding General.
func (r Record) DepartmentNames() []string {
	return departments.Split(r.Departments)
}

// Entry carries the analysis results to be logged.
type Entry struct {
	Snippet     string
	Sentiment   sentiment.Label
	Polarity    float64
	Departments string
	Source      string
	Language    string
}

// Clock supplies the wall-clock time captured on each appended record.
type Clock func() time.Time
