package verification

import (
	"time"

	"github.com/JaimeStill/newsdesk/internal/departments"
	"github.com/JaimeStill/newsdesk/internal/sentiment"
)

// MaxSamples caps the sample snippets kept per department.
const MaxSamples = 2

// BubbleRadius is the fixed radius of every statistics bubble.
const BubbleRadius = 10

// Sample is a recent snippet shown on a department card.
type Sample struct {
	Snippet   string          `json:"snippet"`
	Sentiment sentiment.Label `json:"sentiment"`
	Timestamp time.Time       `json:"timestamp"`
}

// DepartmentSummary is the rollup of the log for one configured department.
type DepartmentSummary struct {
	Name       string   `json:"name"`
	Image      string   `json:"img"`
	TotalPosts int      `json:"total_posts"`
	Samples    []Sample `json:"latest_snippets"`
	Records    []Record `json:"logs"`
}

// SentimentCounts is the three-bucket sentiment histogram.
type SentimentCounts struct {
	Negative int `json:"Negative"`
	Neutral  int `json:"Neutral"`
	Positive int `json:"Positive"`
}

// Total returns the sum of all buckets.
func (c SentimentCounts) Total() int {
	return c.Negative + c.Neutral + c.Positive
}

func (c *SentimentCounts) add(label sentiment.Label) {
	switch label {
	case sentiment.Negative:
		c.Negative++
	case sentiment.Positive:
		c.Positive++
	default:
		c.Neutral++
	}
}

// Bubble is one scatter point: X is the record's order, Y its hour of day.
type Bubble struct {
	X         int             `json:"x"`
	Y         int             `json:"y"`
	R         int             `json:"r"`
	Sentiment sentiment.Label `json:"sentiment"`
}

// Statistics is the global projection over the log.
type Statistics struct {
	Counts  SentimentCounts `json:"sentiment_counts"`
	Bubbles []Bubble        `json:"bubble_data"`
	Log     []Record        `json:"verification_log"`
}

// Rollup groups records by department name (case-insensitive, General
// excluded) and left-joins the groups onto rules so every configured
// department appears, in configuration order. Samples hold the newest
// distinct snippets, newest first. Groups without a configured rule are
// dropped.
func Rollup(records []Record, rules []departments.Rule) []DepartmentSummary {
	groups := make(map[string][]Record)
	for _, r := range records {
		for _, name := range r.DepartmentNames() {
			groups[name] = append(groups[name], r)
		}
	}

	summaries := make([]DepartmentSummary, 0, len(rules))
	for _, rule := range rules {
		logs := groups[departments.Key(rule.Name)]
		if logs == nil {
			logs = []Record{}
		}
		summaries = append(summaries, DepartmentSummary{
			Name:       departments.DisplayName(rule.Name),
			Image:      rule.Image,
			TotalPosts: len(logs),
			Samples:    latestSamples(logs),
			Records:    logs,
		})
	}
	return summaries
}

func latestSamples(logs []Record) []Sample {
	samples := []Sample{}
	seen := make(map[string]bool)

	for i := len(logs) - 1; i >= 0 && len(samples) < MaxSamples; i-- {
		r := logs[i]
		if seen[r.Snippet] {
			continue
		}
		seen[r.Snippet] = true
		samples = append(samples, Sample{
			Snippet:   r.Snippet,
			Sentiment: r.Sentiment,
			Timestamp: r.Timestamp,
		})
	}
	return samples
}

// Summarize builds the sentiment histogram and one bubble per record.
func Summarize(records []Record) Statistics {
	stats := Statistics{
		Bubbles: make([]Bubble, 0, len(records)),
		Log:     records,
	}
	if stats.Log == nil {
		stats.Log = []Record{}
	}

	for _, r := range records {
		stats.Counts.add(r.Sentiment)
		stats.Bubbles = append(stats.Bubbles, Bubble{
			X:         r.Order,
			Y:         r.HourOfDay,
			R:         BubbleRadius,
			Sentiment: r.Sentiment,
		})
	}
	return stats
}
