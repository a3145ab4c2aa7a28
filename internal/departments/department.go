// Package departments implements the department tagging domain for newsdesk.
// It loads the static keyword-to-department rule set and classifies free text
// against it.
package departments

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// Rule maps a government department to the keywords that route text to it.
// Rules are loaded once at startup and never modified afterward.
type Rule struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Image    string   `json:"img"`
}

// Load reads a JSON list of rules from path. A missing file is not fatal:
// a warning is logged and an empty rule set is returned so the classifier
// falls back to the default category.
func Load(path string, logger *slog.Logger) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("departments config not found, using empty rule set", "path", path)
			return []Rule{}, nil
		}
		return nil, fmt.Errorf("read departments: %w", err)
	}

	var rules []Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	for i, r := range rules {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: rule %d has no name", ErrInvalidRules, i)
		}
	}

	if rules == nil {
		rules = []Rule{}
	}

	logger.Info("departments loaded", "path", path, "count", len(rules))
	return rules, nil
}
