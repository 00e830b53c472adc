// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// ResultsDependencies defines the interface for result search operations.
type ResultsDependencies interface {
	Search(ctx context.Context, q string) ([]model.Result, error)
}

// ResultsHandler handles result search requests.
type ResultsHandler struct {
	deps ResultsDependencies
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps ResultsDependencies) *ResultsHandler {
	return &ResultsHandler{deps: deps}
}

// HandleGetResults handles GET /results?q= requests. An empty query
// browses the most recently updated records.
func (h *ResultsHandler) HandleGetResults(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_results"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	results, err := h.deps.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	rows := make([]types.ResultRow, len(results))
	for i, res := range results {
		rows[i] = types.ResultRow{
			EventCode:   res.EventCode,
			EventName:   res.EventName,
			Category:    res.Category,
			ChestNo:     res.ChestNo,
			StudentName: res.StudentName,
			ClassName:   res.ClassName,
			School:      res.School,
			Grade:       res.Grade,
			Place:       res.Place,
			Points:      res.Points,
		}
	}
	writeJSON(w, http.StatusOK, rows)
}
