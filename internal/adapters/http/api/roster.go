// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/scoutlab/fplscout/internal/domain/model"
)

// RosterDependencies defines the interface for roster operations.
type RosterDependencies interface {
	Roster(ctx context.Context) (model.RosterSnapshot, error)
}

// RosterHandler handles roster requests.
type RosterHandler struct {
	deps RosterDependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterDependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// HandleGetRoster handles GET /api/players requests.
func (h *RosterHandler) HandleGetRoster(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_roster"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	snapshot, err := h.deps.Roster(r.Context())
	if err != nil {
		// Upstream fetch failures surface as a generic 500 body.
		writeError(w, http.StatusInternalServerError, "internal_error", NewKind(op, ErrUpstreamFetch))
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
