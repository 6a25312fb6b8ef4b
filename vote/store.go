package vote

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meguru-crafts/vote-server/models"
)

// Store owns all mutable vote state for the process lifetime. State for a
// slug is created lazily on first access (submission or query), seeded from
// the catalog definition.
//
// A single mutex serializes every state access: concurrent submissions to
// the same slug would otherwise interleave read-modify-write on the shared
// counters and lose updates.
type Store struct {
	catalog *Catalog

	mu     sync.Mutex
	states map[string]*VoteState
}

// NewStore creates a store over a loaded catalog with no live state yet.
func NewStore(catalog *Catalog) *Store {
	return &Store{
		catalog: catalog,
		states:  make(map[string]*VoteState),
	}
}

// Definition returns the read-only definition for a slug.
func (s *Store) Definition(slug string) (*models.VoteDefinition, error) {
	def, ok := s.catalog.Get(slug)
	if !ok {
		return nil, ErrVoteNotFound
	}
	return def, nil
}

// Slugs lists every vote in the catalog.
func (s *Store) Slugs() []string {
	return s.catalog.Slugs()
}

// getOrCreateState resolves the definition and live state for a slug,
// seeding the state on first access. Caller must hold mu.
func (s *Store) getOrCreateState(slug string) (*models.VoteDefinition, *VoteState, error) {
	def, ok := s.catalog.Get(slug)
	if !ok {
		return nil, nil, ErrVoteNotFound
	}

	state, ok := s.states[slug]
	if !ok {
		state = newSeededState(def)
		s.states[slug] = state
	}
	return def, state, nil
}

// Submit validates a ballot against the vote's rules and, only on full
// success, folds it into the aggregates. A ballot that fails any check
// leaves the state untouched.
func (s *Store) Submit(slug string, ballot models.SubmitBallotRequest) (models.SubmitBallotResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, state, err := s.getOrCreateState(slug)
	if err != nil {
		return models.SubmitBallotResponse{}, err
	}

	prepared, comment, err := validateBallot(def, ballot, time.Now())
	if err != nil {
		return models.SubmitBallotResponse{}, err
	}

	state.apply(prepared, comment)

	return models.SubmitBallotResponse{
		BallotID: uuid.NewString(),
		Message:  "ballot recorded",
	}, nil
}

// Results tabulates the current snapshot for a slug. The only side effect
// is the lazy seeding of first access; repeated calls without intervening
// submissions return identical snapshots.
func (s *Store) Results(slug string) (models.VoteResultsResponse, error) {
	s.mu.Lock()
	def, state, err := s.getOrCreateState(slug)
	if err != nil {
		s.mu.Unlock()
		return models.VoteResultsResponse{}, err
	}
	snapshot := state.clone()
	s.mu.Unlock()

	return Tabulate(def, snapshot), nil
}
