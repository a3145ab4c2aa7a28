package analysis

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/newsdesk/pkg/handlers"
	"github.com/JaimeStill/newsdesk/pkg/routes"
)

// Form field names accepted by the analyze endpoints.
const (
	TextField  = "news_text"
	ImageField = "news_image"
)

// Handler provides the HTTP endpoint for submitting news for analysis.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, and upload size limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "analysis"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for analysis endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analyze",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Analyze},
		},
	}
}

// Analyze accepts a multipart or urlencoded form with news_text and an
// optional news_image file, and responds with the logged outcome.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	sub, err := ParseSubmission(w, r, h.maxUploadSize)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	outcome, err := h.sys.Submit(r.Context(), sub)
	if err != nil {
		if errors.Is(err, ErrEmptySubmission) {
			handlers.RespondErrorMessage(w, h.logger, http.StatusBadRequest, err, EmptyMessage)
			return
		}
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, outcome)
}

// ParseSubmission reads a submission from the request form, bounding the
// body to maxUploadSize bytes. An absent or unnamed image field is ignored.
func ParseSubmission(w http.ResponseWriter, r *http.Request, maxUploadSize int64) (Submission, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		if tooLarge(err) {
			return Submission{}, ErrFileTooLarge
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			return Submission{}, ErrInvalidForm
		}
		if err := r.ParseForm(); err != nil {
			if tooLarge(err) {
				return Submission{}, ErrFileTooLarge
			}
			return Submission{}, ErrInvalidForm
		}
	}

	sub := Submission{Text: r.FormValue(TextField)}

	file, header, err := r.FormFile(ImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return sub, nil
		}
		return Submission{}, ErrInvalidForm
	}
	defer file.Close()

	if header.Filename == "" {
		return sub, nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		if tooLarge(err) {
			return Submission{}, ErrFileTooLarge
		}
		return Submission{}, ErrInvalidForm
	}

	sub.Image = data
	sub.Filename = header.Filename
	sub.ContentType = header.Header.Get("Content-Type")
	if sub.ContentType == "" && len(data) > 0 {
		sub.ContentType = http.DetectContentType(data)
	}

	return sub, nil
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
