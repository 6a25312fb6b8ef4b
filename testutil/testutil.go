package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/meguru-crafts/vote-server/models"
	"github.com/meguru-crafts/vote-server/vote"
)

// IntPtr returns a pointer to v for optional definition fields
func IntPtr(v int) *int {
	return &v
}

// FloatPtr returns a pointer to v for numeric option values
func FloatPtr(v float64) *float64 {
	return &v
}

// openWindow returns a voting window that brackets the current time
func openWindow() (time.Time, time.Time) {
	now := time.Now()
	return now.Add(-24 * time.Hour), now.Add(24 * time.Hour)
}

// The definition fixtures below mirror the shipped catalog shapes. The vote
// package keeps in-package copies in helpers_test.go because it cannot import
// testutil without a cycle; changes to a shape need to land in both sets.

// YesNoDefinition mirrors the shipped yes/no vote: yes seeded with 48
// supporters, no with 32, comments disallowed.
func YesNoDefinition() models.VoteDefinition {
	start, end := openWindow()
	return models.VoteDefinition{
		Slug:         "echizen-market-night",
		Title:        "Evening hours for the Echizen washi market",
		Question:     "Do you support extending the weekend washi market into the evening?",
		Status:       models.StatusOpen,
		VoteType:     models.TypeYesNo,
		StartAt:      start,
		EndAt:        end,
		AllowComment: false,
		Options: []models.VoteOption{
			{ID: "yes", Label: "In favor", ValueKey: "yes", NumericValue: FloatPtr(1), Supporters: 48},
			{ID: "no", Label: "Against", ValueKey: "no", NumericValue: FloatPtr(0), Supporters: 32},
		},
	}
}

// SingleDefinition mirrors the shipped single-choice vote; no option
// declares a numeric value, so results carry no average.
func SingleDefinition() models.VoteDefinition {
	start, end := openWindow()
	return models.VoteDefinition{
		Slug:         "kurume-weaving-school",
		Title:        "Kurume kasuri training curriculum",
		Question:     "Which direction is most realistic for a six-month kasuri training program?",
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

// MultipleDefinition mirrors the shipped multi-choice vote: 1-3 picks,
// seeded selections, and a ballot total seeded separately via
// initial_ballots (64).
func MultipleDefinition() models.VoteDefinition {
	start, end := openWindow()
	return models.VoteDefinition{
		Slug:           "takaoka-foundry-tour",
		Title:          "Takaoka copperware tour lineup",
		Question:       "Pick every experience you would want in a foundry tour.",
		Status:         models.StatusOpen,
		VoteType:       models.TypeMultiple,
		StartAt:        start,
		EndAt:          end,
		AllowComment:   true,
		MinChoices:     IntPtr(1),
		MaxChoices:     IntPtr(3),
		InitialBallots: IntPtr(64),
		Options: []models.VoteOption{
			{ID: "sand-casting", Label: "Sand mold workshop", ValueKey: "sand-casting", Supporters: 44},
			{ID: "patina-workshop", Label: "Patina coloring workshop", ValueKey: "patina", Supporters: 37},
			{ID: "foundry-tour", Label: "Large furnace viewing", ValueKey: "foundry", Supporters: 51},
			{ID: "design-talk", Label: "Designer talk session", ValueKey: "design", Supporters: 29},
		},
	}
}

// Likert5Definition mirrors the shipped likert vote with supporters
// 42/61/33/54/76 over the scale -2..2.
func Likert5Definition() models.VoteDefinition {
	start, end := openWindow()
	return models.VoteDefinition{
		Slug:         "shamisen-skin-materials",
		Title:        "The future of shamisen skin materials",
		Question:     "How do you feel about continuing to use animal-derived skins for the shamisen?",
		Status:       models.StatusOpen,
		VoteType:     models.TypeLikert5,
		StartAt:      start,
		EndAt:        end,
		AllowComment: true,
		MinChoices:   IntPtr(1),
		MaxChoices:   IntPtr(1),
		Options: []models.VoteOption{
			{ID: "strongly-disagree", Label: "Strongly disagree", ValueKey: "-2", NumericValue: FloatPtr(-2), Supporters: 42},
			{ID: "disagree", Label: "Somewhat disagree", ValueKey: "-1", NumericValue: FloatPtr(-1), Supporters: 61},
			{ID: "neutral", Label: "Undecided", ValueKey: "0", NumericValue: FloatPtr(0), Supporters: 33},
			{ID: "agree", Label: "Somewhat agree", ValueKey: "+1", NumericValue: FloatPtr(1), Supporters: 54},
			{ID: "strongly-agree", Label: "Strongly agree", ValueKey: "+2", NumericValue: FloatPtr(2), Supporters: 76},
		},
	}
}

// NewStore builds a store over the given definitions
func NewStore(t *testing.T, defs ...models.VoteDefinition) *vote.Store {
	t.Helper()

	catalog, err := vote.NewCatalog(defs)
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return vote.NewStore(catalog)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
