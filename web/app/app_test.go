package app_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/newsdesk/internal/analysis"
	"github.com/JaimeStill/newsdesk/internal/departments"
	"github.com/JaimeStill/newsdesk/internal/ocr"
	"github.com/JaimeStill/newsdesk/internal/sentiment"
	"github.com/JaimeStill/newsdesk/internal/translation"
	"github.com/JaimeStill/newsdesk/internal/verification"
	"github.com/JaimeStill/newsdesk/pkg/module"
	"github.com/JaimeStill/newsdesk/pkg/pagination"
	"github.com/JaimeStill/newsdesk/web/app"
)

var testRules = []departments.Rule{
	{Name: "police", Keywords: []string{"harass", "crime"}, Image: "police.png"},
	{Name: "weather", Keywords: []string{"storm"}},
}

type stubEngine struct{}

func (stubEngine) Name() string { return "stub" }

func (stubEngine) Recognize(context.Context, ocr.Input) (string, error) {
	return "storm damage", nil
}

func setup(t *testing.T, maxUploadSize int64) (http.Handler, verification.System) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return time.Date(2026, 3, 14, 9, 15, 0, 0, time.UTC) }
	log := verification.New(testRules, clock, logger, pagination.Config{DefaultPageSize: 10, MaxPageSize: 50})

	sys := analysis.New(
		ocr.NewExtractor(stubEngine{}, []string{"eng"}, logger),
		translation.NewMockNormalizer(),
		sentiment.NewKeywordTagger(),
		departments.NewClassifier(departments.NewSubstringEvaluator(testRules)),
		log,
		nil,
		nil,
		logger,
	)

	m, err := app.NewModule("/app", sys, log, maxUploadSize, logger)
	if err != nil {
		t.Fatalf("NewModule: %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)
	return router, log
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
	return rec
}

func postForm(t *testing.T, h http.Handler, text string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"news_text": {text}}
	req := httptest.NewRequest("POST", "/app/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestVerifyPages(t *testing.T) {
	h, _ := setup(t, 1<<20)

	for _, path := range []string{"/app", "/app/", "/app/home", "/app/verify"} {
		rec := get(t, h, path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: got %d, want 200", path, rec.Code)
			continue
		}
		body := rec.Body.String()
		if !strings.Contains(body, `action="/app/analyze"`) {
			t.Errorf("%s: form missing", path)
		}
		if !strings.Contains(body, "<title>Verify News | Newsdesk</title>") {
			t.Errorf("%s: title missing", path)
		}
	}
}

func TestAnalyzeRendersVerdict(t *testing.T) {
	h, log := setup(t, 1<<20)

	rec := postForm(t, h, "There was a harassment case reported")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"Negative news - Action required.",
		`class="result negative"`,
		"<dd>Police</dd>",
		"<dd>Text Input</dd>",
		"<dd>English</dd>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if log.Len() != 1 {
		t.Errorf("log length: got %d, want 1", log.Len())
	}
}

func TestAnalyzeEmptyShowsAdvisory(t *testing.T) {
	h, log := setup(t, 1<<20)

	rec := postForm(t, h, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), analysis.EmptyMessage) {
		t.Error("advisory message missing")
	}
	if log.Len() != 0 {
		t.Errorf("log length: got %d, want 0", log.Len())
	}
}

func TestAnalyzeImage(t *testing.T) {
	h, log := setup(t, 1<<20)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("news_text", "")
	fw, _ := mw.CreateFormFile("news_image", "clip.png")
	fw.Write([]byte("png-bytes"))
	mw.Close()

	req := httptest.NewRequest("POST", "/app/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "<dd>Image (OCR)</dd>") || !strings.Contains(body, "<dd>storm damage</dd>") {
		t.Errorf("ocr result missing: %s", body)
	}
	if log.Len() != 1 {
		t.Errorf("log length: got %d, want 1", log.Len())
	}
}

func TestAnalyzeTooLarge(t *testing.T) {
	h, log := setup(t, 512)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("news_image", "big.png")
	fw.Write(bytes.Repeat([]byte("x"), 8*1024))
	mw.Close()

	req := httptest.NewRequest("POST", "/app/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status: got %d, want 413", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "too large") {
		t.Error("size message missing")
	}
	if log.Len() != 0 {
		t.Errorf("log length: got %d, want 0", log.Len())
	}
}

func TestDepartmentsPage(t *testing.T) {
	h, _ := setup(t, 1<<20)

	postForm(t, h, "crime in the old town")
	postForm(t, h, "storm and crime")

	rec := get(t, h, "/app/departments")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"<h2>Police</h2>",
		"<h2>Weather</h2>",
		"2 posts",
		"1 posts",
		"storm and crime",
		"2026-03-14 09:15:00",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "<img") {
		t.Error("departments page should not reference unshipped images")
	}
}

func TestDepartmentsPageEmpty(t *testing.T) {
	h, _ := setup(t, 1<<20)

	body := get(t, h, "/app/departments").Body.String()
	if strings.Count(body, "No posts yet.") != 2 {
		t.Error("every configured department should render with zero posts")
	}
}

func TestStatisticsPage(t *testing.T) {
	h, _ := setup(t, 1<<20)

	postForm(t, h, "crime report")
	postForm(t, h, "great festival")

	rec := get(t, h, "/app/statistics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`max="2" value="1"`,
		`<circle class="negative"`,
		`<circle class="positive"`,
		`id="bubble-data"`,
		`"x":2`,
		`"y":9`,
		"great festival",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestStaticAsset(t *testing.T) {
	h, _ := setup(t, 1<<20)

	rec := get(t, h, "/app/static/app.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "--negative") {
		t.Error("stylesheet content missing")
	}
}

func TestNotFound(t *testing.T) {
	h, _ := setup(t, 1<<20)

	rec := get(t, h, "/app/nowhere")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<h1>Not Found</h1>") {
		t.Error("not found page missing")
	}
}
