/*
Package handlers contains HTTP request handlers for the weekly-vote API.

# Handler Types

Each handler is a struct holding the shared vote store:

  - VotingHandler: ballot submission
  - ResultsHandler: vote info and results retrieval

Handlers are created via constructor functions that accept a *vote.Store:

	votingHandler := handlers.NewVotingHandler(store)

# Submission Flow

A ballot submission resolves the vote state (creating it from seed data on
first access), validates the ballot against the vote's rules, and only then
mutates the aggregates:

	POST /votes/{slug}/ballots → SubmitBallot

A failed validation leaves the state untouched and the response reports the
reason. Accepted ballots are acknowledged with a generated ballot id; the
client queries results separately if it wants updated numbers.

# Error Mapping

The core's typed errors map deterministically onto statuses:

	vote.ErrVoteNotFound  → 404
	*vote.WindowError     → 403
	*vote.ValidationError → 400
	anything else         → 500 (logged)

Malformed JSON is rejected at this boundary with 400 before the core runs.
*/
package handlers
