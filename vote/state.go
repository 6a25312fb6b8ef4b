package vote

import "github.com/meguru-crafts/vote-server/models"

// VoteState holds the mutable aggregates for one vote. It lives for the
// process lifetime; a restart resets everything to the seeded values.
type VoteState struct {
	OptionCounts    map[string]int
	TotalBallots    int
	TotalSelections int
	NumericSum      float64
	CommentCount    int
}

// newSeededState replays the definition's seed counts as if they were
// historical ballots. The branching on vote type mirrors live aggregation:
// a seeded supporter on a multiple vote counts toward TotalSelections but
// not TotalBallots, because one multi-select ballot carries several picks.
// InitialBallots, when present, overrides the computed ballot total so a
// multiple vote can publish a ballot denominator independently of its
// selection counts.
func newSeededState(def *models.VoteDefinition) *VoteState {
	state := &VoteState{
		OptionCounts: make(map[string]int, len(def.Options)),
	}

	for _, opt := range def.Options {
		state.OptionCounts[opt.ID] = opt.Supporters
		if def.VoteType == models.TypeMultiple {
			state.TotalSelections += opt.Supporters
		} else {
			state.TotalBallots += opt.Supporters
			state.TotalSelections += opt.Supporters
		}
		if opt.NumericValue != nil {
			state.NumericSum += float64(opt.Supporters) * *opt.NumericValue
		}
	}

	if def.InitialBallots != nil {
		state.TotalBallots = *def.InitialBallots
	}

	return state
}

// apply folds one validated ballot into the aggregates. The effective
// numeric value of a choice is the submitted one when present, else the
// option's own declared value.
func (s *VoteState) apply(prepared []PreparedChoice, comment string) {
	s.TotalBallots++

	for _, choice := range prepared {
		s.OptionCounts[choice.Option.ID]++
		s.TotalSelections++

		value := choice.NumericValue
		if value == nil {
			value = choice.Option.NumericValue
		}
		if value != nil {
			s.NumericSum += *value
		}
	}

	if comment != "" {
		s.CommentCount++
	}
}

func (s *VoteState) clone() *VoteState {
	counts := make(map[string]int, len(s.OptionCounts))
	for id, count := range s.OptionCounts {
		counts[id] = count
	}
	return &VoteState{
		OptionCounts:    counts,
		TotalBallots:    s.TotalBallots,
		TotalSelections: s.TotalSelections,
		NumericSum:      s.NumericSum,
		CommentCount:    s.CommentCount,
	}
}
