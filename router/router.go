package router

import (
	"net/http"

	"github.com/meguru-crafts/vote-server/handlers"
	"github.com/meguru-crafts/vote-server/middleware"
	"github.com/meguru-crafts/vote-server/vote"
)

func NewRouter(store *vote.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(store)
	resultsHandler := handlers.NewResultsHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Vote catalog (public)
	mux.HandleFunc("GET /votes", middleware.WithLogging(resultsHandler.ListVotes))
	mux.HandleFunc("GET /votes/{slug}", middleware.WithLogging(resultsHandler.GetVote))

	// Ballot submission (public)
	mux.HandleFunc("POST /votes/{slug}/ballots", middleware.WithLogging(votingHandler.SubmitBallot))

	// Results retrieval (public)
	mux.HandleFunc("GET /votes/{slug}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("meguru weekly-vote API v1"))
	})

	return mux
}
