package sentiment

import "strings"

const matchPolarity = 0.5

// DefaultPositive holds the positive keywords of the stand-in tagger.
var DefaultPositive = []string{
	"good", "great", "excellent", "win", "achievement",
	"success", "profit", "holiday", "festival",
}

// DefaultNegative holds the negative keywords of the stand-in tagger.
// Harassment, crime, disaster, agriculture and environment terms count
// against the text.
var DefaultNegative = []string{
	"harass", "abuse", "assault", "bad", "problem", "loss",
	"crime", "theft", "murder", "election",

	// weather and disaster
	"storm", "flood", "cyclone", "disaster", "warning", "damage",
	"drought", "closure", "heavy rain", "wind", "cold",

	// agriculture
	"pest", "disease", "crop failure", "shortage", "protest", "deficit",

	// environment
	"pollution", "emission", "climate change", "deforestation",
	"waste", "smog", "hazard", "toxic",
}

// KeywordTagger counts substring occurrences of positive and negative
// keywords and labels text by whichever total is strictly greater.
type KeywordTagger struct {
	positive []string
	negative []string
}

// NewKeywordTagger creates a tagger over the default keyword lists.
func NewKeywordTagger() *KeywordTagger {
	return NewKeywordTaggerWith(DefaultPositive, DefaultNegative)
}

// NewKeywordTaggerWith creates a tagger over custom keyword lists.
func NewKeywordTaggerWith(positive, negative []string) *KeywordTagger {
	return &KeywordTagger{
		positive: lowerAll(positive),
		negative: lowerAll(negative),
	}
}

func (t *KeywordTagger) Analyze(text string) Result {
	lower := strings.ToLower(text)
	pos := countAll(lower, t.positive)
	neg := countAll(lower, t.negative)

	switch {
	case pos > neg:
		return Result{Label: Positive, Polarity: matchPolarity}
	case neg > pos:
		return Result{Label: Negative, Polarity: matchPolarity}
	default:
		return Result{Label: Neutral, Polarity: 0}
	}
}

func countAll(text string, words []string) int {
	n := 0
	for _, w := range words {
		n += strings.Count(text, w)
	}
	return n
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
