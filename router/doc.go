/*
Package router defines HTTP routes for the weekly-vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store)

# Endpoints

Health:

	GET /health

Vote catalog (public):

	GET /votes        - List vote slugs
	GET /votes/{slug} - Vote definition and options

Voting (public):

	POST /votes/{slug}/ballots - Submit a ballot

Results (public):

	GET /votes/{slug}/results - Tabulated snapshot

# Handler Initialization

The router creates handler instances with dependency injection:

	votingHandler := handlers.NewVotingHandler(store)
	resultsHandler := handlers.NewResultsHandler(store)

All handlers share the one vote store constructed in main.
*/
package router
