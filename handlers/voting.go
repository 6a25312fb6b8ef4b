package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/meguru-crafts/vote-server/middleware"
	"github.com/meguru-crafts/vote-server/models"
	"github.com/meguru-crafts/vote-server/vote"
)

type VotingHandler struct {
	store *vote.Store
}

func NewVotingHandler(store *vote.Store) *VotingHandler {
	return &VotingHandler{store: store}
}

// SubmitBallot handles POST /votes/:slug/ballots
func (h *VotingHandler) SubmitBallot(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	// Parse request
	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ack, err := h.store.Submit(slug, req)
	if err != nil {
		writeVoteError(w, err)
		return
	}

	slog.Info("ballot accepted", "slug", slug, "ballot_id", ack.BallotID)

	middleware.JSONResponse(w, http.StatusCreated, ack)
}

// writeVoteError maps the core's typed errors onto HTTP statuses.
// Anything untyped is logged and surfaced as a generic 500.
func writeVoteError(w http.ResponseWriter, err error) {
	var (
		windowErr     *vote.WindowError
		validationErr *vote.ValidationError
	)

	switch {
	case errors.Is(err, vote.ErrVoteNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "vote not found")
	case errors.As(err, &windowErr):
		middleware.ErrorResponse(w, http.StatusForbidden, windowErr.Message)
	case errors.As(err, &validationErr):
		middleware.ErrorResponse(w, http.StatusBadRequest, validationErr.Reason)
	default:
		slog.Error("unexpected vote error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "unexpected error")
	}
}
