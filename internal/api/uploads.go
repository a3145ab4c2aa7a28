package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"

	"github.com/JaimeStill/newsdesk/pkg/handlers"
	"github.com/JaimeStill/newsdesk/pkg/routes"
	"github.com/JaimeStill/newsdesk/pkg/storage"
)

type uploadsHandler struct {
	store  storage.System
	logger *slog.Logger
}

func newUploadsHandler(store storage.System, logger *slog.Logger) *uploadsHandler {
	return &uploadsHandler{
		store:  store,
		logger: logger.With("handler", "uploads"),
	}
}

func (h *uploadsHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/uploads",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{key...}", Handler: h.download},
		},
	}
}

// download streams an archived submission image. Keys are the upload_key
// values returned by the analyze endpoint.
func (h *uploadsHandler) download(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	result, err := h.store.Download(r.Context(), key)
	if err != nil {
		handlers.RespondError(
			w, h.logger,
			storage.MapHTTPStatus(err), err,
		)
		return
	}
	defer result.Body.Close()

	w.Header().Set("Content-Type", result.ContentType)

	if result.ContentLength > 0 {
		w.Header().Set(
			"Content-Length",
			strconv.FormatInt(result.ContentLength, 10),
		)
	}
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("inline; filename=%q", path.Base(key)),
	)
	w.WriteHeader(http.StatusOK)
	io.Copy(w, result.Body)
}
