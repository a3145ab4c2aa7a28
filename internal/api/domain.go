package api

import (
	"fmt"

	"github.com/JaimeStill/newsdesk/internal/analysis"
	"github.com/JaimeStill/newsdesk/internal/config"
	"github.com/JaimeStill/newsdesk/internal/departments"
	"github.com/JaimeStill/newsdesk/internal/ocr"
	"github.com/JaimeStill/newsdesk/internal/sentiment"
	"github.com/JaimeStill/newsdesk/internal/translation"
	"github.com/JaimeStill/newsdesk/internal/verification"
)

// Domain holds the domain systems shared by the API and the dashboard.
// The verification log lives here so both surfaces read and write the same
// records.
type Domain struct {
	Rules        []departments.Rule
	Verification verification.System
	Analysis     analysis.System
}

// NewDomain loads the department rules and assembles the pipeline around
// the given OCR engine.
func NewDomain(cfg *config.Config, runtime *Runtime, engine ocr.Engine) (*Domain, error) {
	rules, err := departments.Load(cfg.Departments.Path, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("load departments: %w", err)
	}

	verificationSystem := verification.New(
		rules,
		nil,
		runtime.Logger,
		runtime.Pagination,
	)

	analysisSystem := analysis.New(
		ocr.NewExtractor(engine, cfg.OCR.Languages, runtime.Logger),
		translation.NewMockNormalizer(),
		sentiment.NewKeywordTagger(),
		departments.NewClassifier(departments.NewSubstringEvaluator(rules)),
		verificationSystem,
		runtime.Storage,
		analysis.NewMetrics(runtime.Metrics),
		runtime.Logger,
	)

	return &Domain{
		Rules:        rules,
		Verification: verificationSystem,
		Analysis:     analysisSystem,
	}, nil
}
