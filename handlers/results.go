package handlers

import (
	"net/http"

	"github.com/meguru-crafts/vote-server/middleware"
	"github.com/meguru-crafts/vote-server/models"
	"github.com/meguru-crafts/vote-server/vote"
)

type ResultsHandler struct {
	store *vote.Store
}

func NewResultsHandler(store *vote.Store) *ResultsHandler {
	return &ResultsHandler{store: store}
}

// GetResults handles GET /votes/:slug/results
// Returns the tabulated snapshot. The response is a derived,
// eventually-refreshed view, so clients may cache it briefly.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	results, err := h.store.Results(slug)
	if err != nil {
		writeVoteError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=30")
	middleware.JSONResponse(w, http.StatusOK, results)
}

// GetVote handles GET /votes/:slug
// Returns the vote definition for form rendering. Seed counts stay
// internal; tallies are only available via the results endpoint.
func (h *ResultsHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	def, err := h.store.Definition(slug)
	if err != nil {
		writeVoteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, def)
}

// ListVotes handles GET /votes
func (h *ResultsHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.VoteListResponse{
		Slugs: h.store.Slugs(),
	})
}
