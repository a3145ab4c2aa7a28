// Package translation normalizes inbound text to English before analysis.
package translation

// Language labels reported by normalizers.
const (
	English = "English"
	Telugu  = "Telugu"
	Other   = "Hindi/Other"
)

// Result carries the normalized text and the detected source language.
type Result struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Normalizer converts text into the analysis language.
type Normalizer interface {
	Normalize(text string) Result
}
