package translation

import "strings"

// Canned translations returned by MockNormalizer.
const (
	TeluguHarassment = "A girl was harassed by a boy."
	IndicPlaceholder = "[[Non-English Translation Mock]] The news mentions harassment or crime."
)

var teluguPhrases = []string{
	"వేధించిన అమ్మాయి",
	"ఒక అబ్బాయి వేధించిన అమ్మాయి",
}

// Bounds of the Devanagari block, exclusive on both ends.
const (
	indicLow  = '\u0900'
	indicHigh = '\u097f'
)

// MockNormalizer is a stand-in for a translation backend. It recognizes a
// fixed Telugu phrase, substitutes a placeholder for any Devanagari text, and
// passes everything else through as English.
type MockNormalizer struct{}

// NewMockNormalizer creates the stand-in normalizer.
func NewMockNormalizer() *MockNormalizer {
	return &MockNormalizer{}
}

func (MockNormalizer) Normalize(text string) Result {
	for _, phrase := range teluguPhrases {
		if strings.Contains(text, phrase) {
			return Result{Text: TeluguHarassment, Language: Telugu}
		}
	}

	if strings.ContainsFunc(text, isIndic) {
		return Result{Text: IndicPlaceholder, Language: Other}
	}

	return Result{Text: text, Language: English}
}

func isIndic(r rune) bool {
	return r > indicLow && r < indicHigh
}
