package analysis

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/newsdesk/internal/ocr"
	"github.com/JaimeStill/newsdesk/internal/sentiment"
	"github.com/JaimeStill/newsdesk/internal/translation"
	"github.com/JaimeStill/newsdesk/internal/verification"
	"github.com/JaimeStill/newsdesk/pkg/formatting"
	"github.com/JaimeStill/newsdesk/pkg/storage"
)

type pipeline struct {
	extractor  *ocr.Extractor
	normalizer translation.Normalizer
	tagger     sentiment.Tagger
	classifier Classifier
	log        verification.System
	uploads    storage.System
	metrics    *Metrics
	logger     *slog.Logger
}

// New creates the submission pipeline. uploads may be nil to disable image
// archiving; metrics may be nil to disable instrumentation.
func New(
	extractor *ocr.Extractor,
	normalizer translation.Normalizer,
	tagger sentiment.Tagger,
	classifier Classifier,
	log verification.System,
	uploads storage.System,
	metrics *Metrics,
	logger *slog.Logger,
) System {
	return &pipeline{
		extractor:  extractor,
		normalizer: normalizer,
		tagger:     tagger,
		classifier: classifier,
		log:        log,
		uploads:    uploads,
		metrics:    metrics,
		logger:     logger.With("system", "analysis"),
	}
}

func (p *pipeline) Handler(maxUploadSize int64) *Handler {
	return NewHandler(p, p.logger, maxUploadSize)
}

func (p *pipeline) Submit(ctx context.Context, sub Submission) (*Outcome, error) {
	text := sub.Text
	source := TextSource

	var uploadKey string
	if sub.HasImage() {
		uploadKey = p.archive(ctx, sub)

		start := time.Now()
		extracted, src := p.extractor.Extract(ctx, sub.Image)
		p.metrics.observeOCR(time.Since(start))

		source = src
		if text == "" {
			text = extracted
		} else {
			text = text + " " + extracted
		}
	}

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptySubmission
	}

	normalized := p.normalizer.Normalize(text)

	var (
		tagged      sentiment.Result
		departments string
		g           errgroup.Group
	)
	g.Go(func() error {
		tagged = p.tagger.Analyze(normalized.Text)
		return nil
	})
	g.Go(func() error {
		departments = p.classifier.Classify(normalized.Text)
		return nil
	})
	g.Wait()

	rec := p.log.Log(verification.Entry{
		Snippet:     text,
		Sentiment:   tagged.Label,
		Polarity:    tagged.Polarity,
		Departments: departments,
		Source:      source,
		Language:    normalized.Language,
	})
	p.metrics.recordSubmission(rec, p.log.Len())

	return &Outcome{
		Record:      rec,
		Message:     Advisory(tagged.Label),
		Sentiment:   tagged.Label,
		Departments: departments,
		Source:      source,
		Text:        text,
		Language:    normalized.Language,
		UploadKey:   uploadKey,
	}, nil
}

// archive stores the raw image when upload storage is configured. Failures
// are logged and reported as an empty key.
func (p *pipeline) archive(ctx context.Context, sub Submission) string {
	if p.uploads == nil {
		return ""
	}

	name := path.Base(sub.Filename)
	if name == "." || name == "/" || name == "" {
		name = "image"
	}
	key := fmt.Sprintf("uploads/%s/%s", uuid.New(), name)

	contentType := sub.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := p.uploads.Upload(ctx, key, bytes.NewReader(sub.Image), contentType); err != nil {
		p.logger.Error("archive upload failed", "key", key, "error", err)
		return ""
	}

	p.logger.Info("upload archived", "key", key, "size", formatting.FormatBytes(int64(len(sub.Image)), 1))
	return key
}
