package vote

import (
	"testing"
	"time"

	"github.com/meguru-crafts/vote-server/models"
)

// Fixture builders mirror the shapes of the shipped catalog, with voting
// windows bracketing the current time so submissions pass the gate.
//
// testutil carries the same four shapes for the handler and router tests,
// but it imports this package, so these stay in-package copies. Any change
// to a shipped vote shape needs to land in both sets.

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func openWindow() (time.Time, time.Time) {
	now := time.Now()
	return now.Add(-24 * time.Hour), now.Add(24 * time.Hour)
}

func yesNoDefinition() models.VoteDefinition {
	start, end := openWindow()
	return models.VoteDefinition{
		Slug:     "market-night",
		Question: "Extend the weekend market into the evening?",
		Status:   models.StatusOpen,
		VoteType: models.TypeYesNo,
		StartAt:  start,
		EndAt:    end,
		Options: []models.VoteOption{
			{ID: "yes", Label: "In favor", ValueKey: "yes", NumericValue: floatPtr(1), Supporters: 48},
			{ID: "no", Label: "Against", ValueKey: "no", NumericValue: floatPtr(0), Supporters: 32},
		},
	}
}

func singleDefinition() models.VoteDefinition {
	start, end := openWindow()
	return models.VoteDefinition{
		Slug:         "training-curriculum",
		Question:     "Which curriculum direction is most realistic?",
		Status:       models.StatusOpen,
		VoteType:     models.TypeSingle,
		StartAt:      start,
		EndAt:        end,
		AllowComment: true,
		Options: []models.VoteOption{
			{ID: "focus-weaving", Label: "Weaving-first intensive", Supporters: 21},
			{ID: "balanced", Label: "Balanced theory and practice", Supporters: 34},
			{ID: "mentorship", Label: "Master-apprentice placements", Supporters: 12},
		},
	}
}

func multipleDefinition() models.VoteDefinition {
	start, end := openWindow()
	return models.VoteDefinition{
		Slug:           "foundry-tour",
		Question:       "Pick every experience you would want in a tour.",
		Status:         models.StatusOpen,
		VoteType:       models.TypeMultiple,
		StartAt:        start,
		EndAt:          end,
		AllowComment:   true,
		MinChoices:     intPtr(1),
		MaxChoices:     intPtr(3),
		InitialBallots: intPtr(64),
		Options: []models.VoteOption{
			{ID: "sand-casting", Label: "Sand mold workshop", Supporters: 44},
			{ID: "patina-workshop", Label: "Patina coloring workshop", ValueKey: "patina", Supporters: 37},
			{ID: "foundry-tour", Label: "Large furnace viewing", ValueKey: "foundry", Supporters: 51},
			{ID: "design-talk", Label: "Designer talk session", ValueKey: "design", Supporters: 29},
		},
	}
}

func likert5Definition() models.VoteDefinition {
	start, end := openWindow()
	return models.VoteDefinition{
		Slug:         "skin-materials",
		Question:     "Continue using animal-derived skins?",
		Status:       models.StatusOpen,
		VoteType:     models.TypeLikert5,
		StartAt:      start,
		EndAt:        end,
		AllowComment: true,
		Options: []models.VoteOption{
			{ID: "strongly-disagree", Label: "Strongly disagree", ValueKey: "-2", NumericValue: floatPtr(-2), Supporters: 42},
			{ID: "disagree", Label: "Somewhat disagree", ValueKey: "-1", NumericValue: floatPtr(-1), Supporters: 61},
			{ID: "neutral", Label: "Undecided", ValueKey: "0", NumericValue: floatPtr(0), Supporters: 33},
			{ID: "agree", Label: "Somewhat agree", ValueKey: "+1", NumericValue: floatPtr(1), Supporters: 54},
			{ID: "strongly-agree", Label: "Strongly agree", ValueKey: "+2", NumericValue: floatPtr(2), Supporters: 76},
		},
	}
}

func newTestStore(t *testing.T, defs ...models.VoteDefinition) *Store {
	t.Helper()

	catalog, err := NewCatalog(defs)
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return NewStore(catalog)
}

func choices(ids ...string) []models.BallotChoice {
	out := make([]models.BallotChoice, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.BallotChoice{OptionID: id})
	}
	return out
}

func numericChoice(id string, value float64) []models.BallotChoice {
	return []models.BallotChoice{{OptionID: id, NumericValue: floatPtr(value)}}
}
