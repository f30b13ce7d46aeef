// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/scoutlab/fplscout/internal/domain/model"
)

// PicksDependencies defines the interface for top-pick analysis operations.
type PicksDependencies interface {
	TopPicks(ctx context.Context) (model.PicksPayload, error)
}

// PicksHandler handles top-pick analysis requests.
type PicksHandler struct {
	deps PicksDependencies
}

// NewPicksHandler creates a new picks handler.
func NewPicksHandler(deps PicksDependencies) *PicksHandler {
	return &PicksHandler{deps: deps}
}

// HandleGetPicks handles GET /api/picks requests.
func (h *PicksHandler) HandleGetPicks(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_picks"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	payload, err := h.deps.TopPicks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", NewKind(op, ErrAnalyzePicks))
		return
	}
	writeJSON(w, http.StatusOK, payload)
}
