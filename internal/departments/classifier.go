package departments

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// General is reported when no department rule matches.
const General = "General"

// Separator joins department names in a classification result.
const Separator = ", "

// Classifier turns evaluator matches into the joined department string
// stored on verification records.
type Classifier struct {
	eval Evaluator
}

// NewClassifier creates a Classifier backed by the given evaluator.
func NewClassifier(eval Evaluator) *Classifier {
	return &Classifier{eval: eval}
}

// Classify returns the display names of all matched departments joined by
// ", ", or General when nothing matches.
func (c *Classifier) Classify(text string) string {
	matched := c.eval.Evaluate(text)
	if len(matched) == 0 {
		return General
	}

	names := make([]string, len(matched))
	for i, m := range matched {
		names[i] = DisplayName(m)
	}
	return strings.Join(names, Separator)
}

// DisplayName upper-cases the first letter of name and lower-cases the rest.
func DisplayName(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + cases.Lower(language.Und).String(name[size:])
}

// Key folds a department name into the form used to compare rule names
// against classification results. A Caser is stateful, so one is created
// per call.
func Key(name string) string {
	return strings.TrimSpace(cases.Lower(language.Und).String(name))
}

// Split breaks a classification result back into lower-cased department
// names, dropping General and empty entries.
func Split(departments string) []string {
	var names []string
	for _, part := range strings.Split(departments, Separator) {
		name := Key(part)
		if name == "" || name == Key(General) {
			continue
		}
		names = append(names, name)
	}
	return names
}
