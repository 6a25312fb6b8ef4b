/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitBallotRequest: choices ([{option_id, numeric_value?, rank?}]), comment
  - BallotChoice: one picked option within a ballot

# Response Types

Types for JSON responses:

  - SubmitBallotResponse: ballot_id, message
  - VoteResultsResponse: vote_type, status, total, distribution, avg?,
    comment_count, total_selections
  - DistributionPoint: key, label, count, percent
  - VoteListResponse: slugs
  - ErrorResponse: error

# Domain Types

Catalog data structures, shared between the YAML loader and the API:

  - VoteDefinition: immutable poll definition (question, window, policy)
  - VoteOption: selectable answer with label and optional numeric value

# Constants

Status values:

	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"

Vote types:

	TypeYesNo    = "yesno"
	TypeSingle   = "single"
	TypeMultiple = "multiple"
	TypeLikert5  = "likert5"
*/
package models
