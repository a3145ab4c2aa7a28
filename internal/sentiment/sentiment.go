// Package sentiment tags text with a three-way sentiment label.
// The default Tagger is a keyword counter standing in for real inference.
package sentiment

// Label is a sentiment classification.
type Label string

const (
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
	Positive Label = "Positive"
)

// Labels lists every label in histogram order.
var Labels = []Label{Negative, Neutral, Positive}

// ActionRequired reports whether content with this label needs follow-up.
func (l Label) ActionRequired() bool {
	return l != Neutral
}

// Result is the outcome of tagging one piece of text.
// Polarity is a fixed magnitude, not a continuous score.
type Result struct {
	Label    Label   `json:"label"`
	Polarity float64 `json:"polarity"`
}

// Tagger assigns a sentiment to text.
type Tagger interface {
	Analyze(text string) Result
}
