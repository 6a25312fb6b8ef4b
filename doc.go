/*
Package main provides the entry point for the weekly-vote API server.

The server backs the "weekly vote" feature of a regional-craft discovery
site: it accepts ballots for differently-shaped polls (yes/no, single
choice, multi choice, 5-point Likert), validates them against per-vote
rules, keeps in-memory aggregate counts, and serves derived statistics
back to the UI.

# Starting the Server

The server reads its vote catalog from a YAML file:

	go run . -c votes.yaml

Or with environment variables (a local .env file is honored):

	VOTE_CATALOG=votes.yaml PORT=3327 go run .

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3327)
  - VOTE_CATALOG (-c): Catalog file (default: votes.yaml)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - vote: core domain (catalog, state store, validator, tabulation)
  - handlers: HTTP request handlers (voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and catalog types
  - cliparse: Configuration parsing

All state is process-lifetime only: a restart silently resets every vote
to its seeded counts. That is accepted behavior, not a bug — persistence,
voter identity, and duplicate-vote prevention are out of scope.

See package documentation for each component.
*/
package main
