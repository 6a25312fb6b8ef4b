package vote

import (
	"math"

	"github.com/meguru-crafts/vote-server/models"
)

// Tabulate computes the published results snapshot for a vote. It never
// mutates the state, so it is safe to call any number of times.
//
// The percentage base differs by vote type: a multiple vote divides by
// total selections (one ballot contributes several picks to the displayed
// denominator), every other type divides by total ballots.
func Tabulate(def *models.VoteDefinition, state *VoteState) models.VoteResultsResponse {
	base := state.TotalBallots
	if def.VoteType == models.TypeMultiple {
		base = state.TotalSelections
	}

	hasNumeric := false
	distribution := make([]models.DistributionPoint, 0, len(def.Options))
	for _, opt := range def.Options {
		if opt.NumericValue != nil {
			hasNumeric = true
		}

		count := state.OptionCounts[opt.ID]
		percent := 0.0
		if base > 0 {
			percent = round1(float64(count) / float64(base) * 100)
		}

		key := opt.ValueKey
		if key == "" {
			key = opt.ID
		}

		distribution = append(distribution, models.DistributionPoint{
			Key:     key,
			Label:   opt.Label,
			Count:   count,
			Percent: percent,
		})
	}

	results := models.VoteResultsResponse{
		VoteType:        def.VoteType,
		Status:          def.Status,
		Total:           state.TotalBallots,
		Distribution:    distribution,
		CommentCount:    state.CommentCount,
		TotalSelections: state.TotalSelections,
	}

	if hasNumeric && state.TotalBallots > 0 {
		avg := round2(state.NumericSum / float64(state.TotalBallots))
		results.Avg = &avg
	}

	return results
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
