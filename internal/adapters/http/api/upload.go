// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// UploadDependencies defines the interface for workbook upload processing.
type UploadDependencies interface {
	Upload(ctx context.Context, data []byte, categoryNo *int) (model.Summary, error)
}

// UploadHandler handles workbook upload requests.
type UploadHandler struct {
	deps     UploadDependencies
	maxBytes int64
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(deps UploadDependencies, maxBytes int64) *UploadHandler {
	return &UploadHandler{deps: deps, maxBytes: maxBytes}
}

// HandleUpload handles POST /upload requests. The body is multipart form
// data with a required "file" part and an optional integer "category"
// disambiguator.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "api.upload"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no_file", WrapKind(op, ErrNoFile, err))
		return
	}
	defer file.Close()

	var categoryNo *int
	if raw := strings.TrimSpace(r.FormValue("category")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_category", WrapKind(op, ErrBadRequest, err))
			return
		}
		categoryNo = &n
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	summary, err := h.deps.Upload(r.Context(), data, categoryNo)
	if err != nil {
		if errors.Is(err, service.ErrEmptyUpload) || errors.Is(err, service.ErrWorkbook) {
			writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	events := summary.Events
	if events == nil {
		events = []string{}
	}
	writeJSON(w, http.StatusOK, types.UploadSummary{
		Success: true,
		Count:   summary.Count,
		Events:  events,
	})
}
