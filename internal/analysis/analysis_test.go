package analysis_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/JaimeStill/newsdesk/internal/analysis"
	"github.com/JaimeStill/newsdesk/internal/departments"
	"github.com/JaimeStill/newsdesk/internal/ocr"
	"github.com/JaimeStill/newsdesk/internal/sentiment"
	"github.com/JaimeStill/newsdesk/internal/translation"
	"github.com/JaimeStill/newsdesk/internal/verification"
	"github.com/JaimeStill/newsdesk/pkg/lifecycle"
	"github.com/JaimeStill/newsdesk/pkg/pagination"
	"github.com/JaimeStill/newsdesk/pkg/routes"
	"github.com/JaimeStill/newsdesk/pkg/storage"
)

var testRules = []departments.Rule{
	{Name: "police", Keywords: []string{"harass", "crime"}, Image: "police.png"},
	{Name: "agriculture", Keywords: []string{"crop", "farmer"}, Image: "agri.png"},
}

type fakeEngine struct {
	text string
	err  error
}

func (e *fakeEngine) Name() string { return "fake" }

func (e *fakeEngine) Recognize(_ context.Context, _ ocr.Input) (string, error) {
	return e.text, e.err
}

type fakeStore struct {
	mu      sync.Mutex
	uploads map[string][]byte
	types   map[string]string
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{uploads: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStore) Start(*lifecycle.Coordinator) error { return nil }

func (s *fakeStore) Ready() bool { return true }

func (s *fakeStore) Upload(_ context.Context, key string, r io.Reader, contentType string) error {
	if s.err != nil {
		return s.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[key] = data
	s.types[key] = contentType
	return nil
}

func (s *fakeStore) Download(_ context.Context, key string) (*storage.Blob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.uploads[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &storage.Blob{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentType:   s.types[key],
		ContentLength: int64(len(data)),
	}, nil
}

type fixture struct {
	sys     analysis.System
	log     verification.System
	store   *fakeStore
	engine  *fakeEngine
	metrics *prometheus.Registry
}

func newFixture(t *testing.T, withStore bool) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return time.Date(2026, 3, 14, 16, 5, 0, 0, time.UTC) }

	f := &fixture{
		engine:  &fakeEngine{},
		metrics: prometheus.NewRegistry(),
		log: verification.New(
			testRules, clock, logger,
			pagination.Config{DefaultPageSize: 10, MaxPageSize: 50},
		),
	}

	var uploads storage.System
	if withStore {
		f.store = newFakeStore()
		uploads = f.store
	}

	f.sys = analysis.New(
		ocr.NewExtractor(f.engine, []string{"eng"}, logger),
		translation.NewMockNormalizer(),
		sentiment.NewKeywordTagger(),
		departments.NewClassifier(departments.NewSubstringEvaluator(testRules)),
		f.log,
		uploads,
		analysis.NewMetrics(f.metrics),
		logger,
	)
	return f
}

func TestSubmitTextHarassment(t *testing.T) {
	f := newFixture(t, false)

	out, err := f.sys.Submit(context.Background(), analysis.Submission{
		Text: "There was a harassment case reported",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Sentiment != sentiment.Negative {
		t.Errorf("sentiment: got %s, want Negative", out.Sentiment)
	}
	if out.Departments != "Police" {
		t.Errorf("departments: got %q, want Police", out.Departments)
	}
	if out.Source != analysis.TextSource {
		t.Errorf("source: got %q", out.Source)
	}
	if out.Language != translation.English {
		t.Errorf("language: got %q", out.Language)
	}
	if out.Message != "Negative news - Action required." {
		t.Errorf("message: got %q", out.Message)
	}
	if f.log.Len() != 1 {
		t.Errorf("log length: got %d, want 1", f.log.Len())
	}
	if out.Record.ID != 1 || out.Record.Order != 1 || out.Record.HourOfDay != 16 {
		t.Errorf("record ordinals: %+v", out.Record)
	}
}

func TestSubmitEmpty(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.sys.Submit(context.Background(), analysis.Submission{})
	if !errors.Is(err, analysis.ErrEmptySubmission) {
		t.Fatalf("got %v, want ErrEmptySubmission", err)
	}

	_, err = f.sys.Submit(context.Background(), analysis.Submission{Text: "   "})
	if !errors.Is(err, analysis.ErrEmptySubmission) {
		t.Fatalf("blank text: got %v, want ErrEmptySubmission", err)
	}

	if f.log.Len() != 0 {
		t.Errorf("log length: got %d, want 0", f.log.Len())
	}
}

func TestSubmitTelugu(t *testing.T) {
	f := newFixture(t, false)

	text := "ఒక అబ్బాయి వేధించిన అమ్మాయి"
	out, err := f.sys.Submit(context.Background(), analysis.Submission{Text: text})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Language != translation.Telugu {
		t.Errorf("language: got %q", out.Language)
	}
	if out.Sentiment != sentiment.Negative {
		t.Errorf("sentiment: got %s", out.Sentiment)
	}
	if out.Departments != "Police" {
		t.Errorf("departments: got %q", out.Departments)
	}
	if out.Record.Snippet != text {
		t.Errorf("snippet should keep original text, got %q", out.Record.Snippet)
	}
}

func TestSubmitPositive(t *testing.T) {
	f := newFixture(t, false)

	out, err := f.sys.Submit(context.Background(), analysis.Submission{
		Text: "Great festival success this year",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Sentiment != sentiment.Positive {
		t.Errorf("sentiment: got %s", out.Sentiment)
	}
	if out.Record.Polarity != 0.5 {
		t.Errorf("polarity: got %v", out.Record.Polarity)
	}
	if out.Departments != departments.General {
		t.Errorf("departments: got %q", out.Departments)
	}
	if out.Message != "Positive news - Action required." {
		t.Errorf("message: got %q", out.Message)
	}
}

func TestSubmitImage(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		ocrText     string
		ocrErr      error
		wantSnippet string
	}{
		{
			name:        "image only",
			ocrText:     "  farmer crop loss \n",
			wantSnippet: "farmer crop loss",
		},
		{
			name:        "text and image",
			text:        "storm warning",
			ocrText:     "crop damage",
			wantSnippet: "storm warning crop damage",
		},
		{
			name:        "ocr failure",
			ocrErr:      errors.New("engine unavailable"),
			wantSnippet: "Error extracting text: engine unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			f.engine.text = tt.ocrText
			f.engine.err = tt.ocrErr

			out, err := f.sys.Submit(context.Background(), analysis.Submission{
				Text:  tt.text,
				Image: []byte{0x89, 'P', 'N', 'G'},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if out.Source != ocr.Source {
				t.Errorf("source: got %q", out.Source)
			}
			if out.Record.Snippet != tt.wantSnippet {
				t.Errorf("snippet: got %q, want %q", out.Record.Snippet, tt.wantSnippet)
			}
		})
	}
}

func TestSubmitImageWithNoTextFound(t *testing.T) {
	f := newFixture(t, false)
	f.engine.text = "   "

	_, err := f.sys.Submit(context.Background(), analysis.Submission{Image: []byte("img")})
	if !errors.Is(err, analysis.ErrEmptySubmission) {
		t.Fatalf("got %v, want ErrEmptySubmission", err)
	}
	if f.log.Len() != 0 {
		t.Errorf("log length: got %d, want 0", f.log.Len())
	}
}

func TestSubmitArchivesImage(t *testing.T) {
	f := newFixture(t, true)
	f.engine.text = "crime report"

	out, err := f.sys.Submit(context.Background(), analysis.Submission{
		Image:       []byte("image-bytes"),
		Filename:    "../../scan.png",
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out.UploadKey, "uploads/") || !strings.HasSuffix(out.UploadKey, "/scan.png") {
		t.Fatalf("upload key: got %q", out.UploadKey)
	}
	if err := storage.ValidateKey(out.UploadKey); err != nil {
		t.Errorf("upload key invalid: %v", err)
	}

	blob, err := f.store.Download(context.Background(), out.UploadKey)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	defer blob.Body.Close()
	data, _ := io.ReadAll(blob.Body)
	if string(data) != "image-bytes" || blob.ContentType != "image/png" {
		t.Errorf("archived blob: %q %q", data, blob.ContentType)
	}
}

func TestSubmitArchiveFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, true)
	f.store.err = errors.New("unreachable")
	f.engine.text = "crime report"

	out, err := f.sys.Submit(context.Background(), analysis.Submission{Image: []byte("x")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.UploadKey != "" {
		t.Errorf("upload key: got %q, want empty", out.UploadKey)
	}
	if f.log.Len() != 1 {
		t.Errorf("log length: got %d, want 1", f.log.Len())
	}
}

func TestSubmitRecordsMetrics(t *testing.T) {
	f := newFixture(t, false)
	f.engine.text = "crop"

	f.sys.Submit(context.Background(), analysis.Submission{Text: "crime"})
	f.sys.Submit(context.Background(), analysis.Submission{Text: "crime"})
	f.sys.Submit(context.Background(), analysis.Submission{Image: []byte("x")})

	expected := `
# HELP newsdesk_submissions_total Total number of analyzed submissions
# TYPE newsdesk_submissions_total counter
newsdesk_submissions_total{language="English",sentiment="Negative",source="Text Input"} 2
newsdesk_submissions_total{language="English",sentiment="Neutral",source="Image (OCR)"} 1
# HELP newsdesk_verification_log_size Number of records in the verification log
# TYPE newsdesk_verification_log_size gauge
newsdesk_verification_log_size 3
`
	err := testutil.GatherAndCompare(
		f.metrics,
		strings.NewReader(expected),
		"newsdesk_submissions_total",
		"newsdesk_verification_log_size",
	)
	if err != nil {
		t.Error(err)
	}

	n, err := testutil.GatherAndCount(f.metrics, "newsdesk_ocr_duration_seconds")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("ocr histogram series: got %d, want 1", n)
	}
}

func TestAdvisory(t *testing.T) {
	tests := []struct {
		label sentiment.Label
		want  string
	}{
		{sentiment.Negative, "Negative news - Action required."},
		{sentiment.Positive, "Positive news - Action required."},
		{sentiment.Neutral, "Neutral news - No action required."},
	}

	for _, tt := range tests {
		if got := analysis.Advisory(tt.label); got != tt.want {
			t.Errorf("Advisory(%s): got %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{analysis.ErrEmptySubmission, http.StatusBadRequest},
		{analysis.ErrInvalidForm, http.StatusBadRequest},
		{analysis.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := analysis.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v): got %d, want %d", tt.err, got, tt.want)
		}
	}
}

func newMux(f *fixture, maxUploadSize int64) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, f.sys.Handler(maxUploadSize).Routes())
	return mux
}

func multipartBody(t *testing.T, text string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField(analysis.TextField, text); err != nil {
		t.Fatal(err)
	}
	if image != nil {
		fw, err := mw.CreateFormFile(analysis.ImageField, "scan.png")
		if err != nil {
			t.Fatal(err)
		}
		fw.Write(image)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestHandlerAnalyzeMultipart(t *testing.T) {
	f := newFixture(t, false)
	f.engine.text = "farmer protest"
	mux := newMux(f, 1<<20)

	body, contentType := multipartBody(t, "harassment reported", []byte("png"))
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var out analysis.Outcome
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Text != "harassment reported farmer protest" {
		t.Errorf("text: got %q", out.Text)
	}
	if out.Departments != "Police, Agriculture" {
		t.Errorf("departments: got %q", out.Departments)
	}
	if out.Source != ocr.Source {
		t.Errorf("source: got %q", out.Source)
	}
}

func TestHandlerAnalyzeURLEncoded(t *testing.T) {
	f := newFixture(t, false)
	mux := newMux(f, 1<<20)

	form := url.Values{analysis.TextField: {"crime in the city"}}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d: %s", rec.Code, rec.Body.String())
	}
	if f.log.Len() != 1 {
		t.Errorf("log length: got %d", f.log.Len())
	}
}

func TestHandlerAnalyzeEmpty(t *testing.T) {
	f := newFixture(t, false)
	mux := newMux(f, 1<<20)

	body, contentType := multipartBody(t, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp map[string]string
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp["message"] != analysis.EmptyMessage {
		t.Errorf("message: got %q", resp["message"])
	}
	if f.log.Len() != 0 {
		t.Errorf("log length: got %d, want 0", f.log.Len())
	}
}

func TestHandlerAnalyzeTooLarge(t *testing.T) {
	f := newFixture(t, false)
	mux := newMux(f, 1024)

	body, contentType := multipartBody(t, "crime", bytes.Repeat([]byte("x"), 64*1024))
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
	if f.log.Len() != 0 {
		t.Errorf("log length: got %d, want 0", f.log.Len())
	}
}
