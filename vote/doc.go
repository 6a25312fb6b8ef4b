/*
Package vote implements the weekly-vote core: the definition catalog, the
in-memory tabulation state, ballot validation, and results tabulation.

# Catalog

The catalog is a read-only registry of vote definitions loaded from YAML
at startup:

	catalog, err := vote.LoadCatalog("votes.yaml")

Loading validates every definition: non-empty options, unique option ids,
and for likert5 votes a bijection onto the scale {-2,-1,0,1,2}.

# Store

The Store owns all mutable state, keyed by vote slug. State is created
lazily on first access, seeded from each option's supporters count:

	store := vote.NewStore(catalog)
	ack, err := store.Submit(slug, ballot)
	results, err := store.Results(slug)

Submission is atomic: validation runs every check before the first counter
moves, so a rejected ballot never partially mutates state. A single mutex
serializes submissions and queries.

# Errors

The core raises typed errors that the HTTP boundary maps to statuses:

  - ErrVoteNotFound   → 404
  - *ValidationError  → 400
  - *WindowError      → 403 (not open / not yet started / ended)

# Tabulation

Tabulate derives the display snapshot: per-option counts and percentages,
ballot and selection totals, comment count, and an average for votes whose
options declare numeric values. Percentages for multiple votes use total
selections as the base; every other type uses total ballots.
*/
package vote
