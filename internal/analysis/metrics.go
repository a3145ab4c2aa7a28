package analysis

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/JaimeStill/newsdesk/internal/verification"
)

// Metrics holds the pipeline collectors. A nil *Metrics records nothing.
type Metrics struct {
	submissions *prometheus.CounterVec
	ocrDuration prometheus.Histogram
	logSize     prometheus.Gauge
}

// NewMetrics registers the pipeline collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsdesk_submissions_total",
				Help: "Total number of analyzed submissions",
			},
			[]string{"source", "sentiment", "language"},
		),
		ocrDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "newsdesk_ocr_duration_seconds",
				Help:    "OCR extraction duration in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
		),
		logSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "newsdesk_verification_log_size",
				Help: "Number of records in the verification log",
			},
		),
	}
}

func (m *Metrics) observeOCR(d time.Duration) {
	if m == nil {
		return
	}
	m.ocrDuration.Observe(d.Seconds())
}

func (m *Metrics) recordSubmission(rec verification.Record, logSize int) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(rec.Source, string(rec.Sentiment), rec.Language).Inc()
	m.logSize.Set(float64(logSize))
}
