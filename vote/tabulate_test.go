package vote

import (
	"testing"

	"github.com/meguru-crafts/vote-server/models"
)

func TestTabulateYesNo(t *testing.T) {
	def := yesNoDefinition()
	state := newSeededState(&def)

	results := Tabulate(&def, state)

	if results.Total != 80 {
		t.Errorf("Expected 80 total ballots, got %d", results.Total)
	}
	if results.TotalSelections != 80 {
		t.Errorf("Expected 80 total selections, got %d", results.TotalSelections)
	}
	if results.VoteType != models.TypeYesNo {
		t.Errorf("Expected vote type yesno, got %q", results.VoteType)
	}
	if len(results.Distribution) != 2 {
		t.Fatalf("Expected 2 distribution points, got %d", len(results.Distribution))
	}
	if results.Distribution[0].Percent != 60.0 {
		t.Errorf("Expected yes at 60.0%%, got %v", results.Distribution[0].Percent)
	}
	if results.Distribution[1].Percent != 40.0 {
		t.Errorf("Expected no at 40.0%%, got %v", results.Distribution[1].Percent)
	}
	if results.Avg == nil || *results.Avg != 0.6 {
		t.Errorf("Expected average 0.6, got %v", results.Avg)
	}
}

func TestTabulateRoundsToOneDecimal(t *testing.T) {
	def := yesNoDefinition()
	state := newSeededState(&def)
	state.apply([]PreparedChoice{{Option: def.Options[0]}}, "")

	results := Tabulate(&def, state)

	// 49/81 and 32/81
	if results.Distribution[0].Percent != 60.5 {
		t.Errorf("Expected yes at 60.5%%, got %v", results.Distribution[0].Percent)
	}
	if results.Distribution[1].Percent != 39.5 {
		t.Errorf("Expected no at 39.5%%, got %v", results.Distribution[1].Percent)
	}
}

func TestTabulateMultipleUsesSelectionBase(t *testing.T) {
	def := multipleDefinition()
	def.InitialBallots = nil
	def.Options = []models.VoteOption{
		{ID: "a", Label: "A", Supporters: 3},
		{ID: "b", Label: "B", Supporters: 5},
	}
	state := newSeededState(&def)

	results := Tabulate(&def, state)

	// Percentages divide by the 8 selections, not the ballot total.
	if results.TotalSelections != 8 {
		t.Fatalf("Expected 8 selections, got %d", results.TotalSelections)
	}
	if results.Total != 0 {
		t.Errorf("Expected 0 ballots without initial_ballots, got %d", results.Total)
	}
	if results.Distribution[0].Percent != 37.5 {
		t.Errorf("Expected a at 37.5%%, got %v", results.Distribution[0].Percent)
	}
	if results.Distribution[1].Percent != 62.5 {
		t.Errorf("Expected b at 62.5%%, got %v", results.Distribution[1].Percent)
	}
}

func TestTabulateZeroBase(t *testing.T) {
	def := singleDefinition()
	for i := range def.Options {
		def.Options[i].Supporters = 0
	}
	state := newSeededState(&def)

	results := Tabulate(&def, state)

	if results.Total != 0 {
		t.Errorf("Expected 0 total, got %d", results.Total)
	}
	for _, point := range results.Distribution {
		if point.Percent != 0 {
			t.Errorf("Expected 0%% for %q with no ballots, got %v", point.Key, point.Percent)
		}
	}
	if results.Avg != nil {
		t.Errorf("Expected no average, got %v", *results.Avg)
	}
}

func TestTabulateOmitsAverageWithoutNumericOptions(t *testing.T) {
	def := singleDefinition()
	state := newSeededState(&def)

	results := Tabulate(&def, state)

	if results.Avg != nil {
		t.Errorf("Expected no average for a vote without numeric values, got %v", *results.Avg)
	}
}

func TestTabulateLikertAverage(t *testing.T) {
	def := likert5Definition()
	state := newSeededState(&def)

	results := Tabulate(&def, state)

	// (42*-2 + 61*-1 + 33*0 + 54*1 + 76*2) / 266 = 61/266
	if results.Total != 266 {
		t.Fatalf("Expected 266 total ballots, got %d", results.Total)
	}
	if results.Avg == nil || *results.Avg != 0.23 {
		t.Errorf("Expected average 0.23, got %v", results.Avg)
	}
}

func TestTabulateKeyFallsBackToOptionID(t *testing.T) {
	def := multipleDefinition()
	state := newSeededState(&def)

	results := Tabulate(&def, state)

	if results.Distribution[0].Key != "sand-casting" {
		t.Errorf("Expected key to fall back to option id, got %q", results.Distribution[0].Key)
	}
	if results.Distribution[1].Key != "patina" {
		t.Errorf("Expected declared value key, got %q", results.Distribution[1].Key)
	}
}
