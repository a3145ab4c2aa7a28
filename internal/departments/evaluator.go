package departments

import "strings"

// Evaluator selects the departments whose rules match a piece of text.
// Matched names are returned in rule order.
type Evaluator interface {
	Evaluate(text string) []string
}

// SubstringEvaluator matches a rule when any of its keywords occurs anywhere
// in the lower-cased text. There is no tokenization or word-boundary check,
// so "cold" also matches "scold".
type SubstringEvaluator struct {
	rules []Rule
}

// NewSubstringEvaluator creates an evaluator over a copy of rules with
// keywords lower-cased.
func NewSubstringEvaluator(rules []Rule) *SubstringEvaluator {
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		keywords := make([]string, len(r.Keywords))
		for j, k := range r.Keywords {
			keywords[j] = strings.ToLower(k)
		}
		normalized[i] = Rule{Name: r.Name, Keywords: keywords, Image: r.Image}
	}
	return &SubstringEvaluator{rules: normalized}
}

func (e *SubstringEvaluator) Evaluate(text string) []string {
	lower := strings.ToLower(text)
	var matched []string

	for _, r := range e.rules {
		for _, k := range r.Keywords {
			if strings.Contains(lower, k) {
				matched = append(matched, r.Name)
				break
			}
		}
	}

	return matched
}
