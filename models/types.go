package models

import "time"

// Vote status constants
const (
	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// VoteType identifies the ballot shape a vote accepts.
type VoteType string

// Supported vote types
const (
	TypeYesNo    VoteType = "yesno"
	TypeSingle   VoteType = "single"
	TypeMultiple VoteType = "multiple"
	TypeLikert5  VoteType = "likert5"
)

// Domain types

// VoteOption is one selectable answer within a vote.
// Supporters is the seed count used to initialize aggregate state;
// it is never exposed through the API.
type VoteOption struct {
	ID           string   `yaml:"id" json:"id"`
	Label        string   `yaml:"label" json:"label"`
	Description  string   `yaml:"description" json:"description,omitempty"`
	ValueKey     string   `yaml:"value_key" json:"value_key,omitempty"`
	NumericValue *float64 `yaml:"numeric_value" json:"numeric_value,omitempty"`
	Supporters   int      `yaml:"supporters" json:"-"`
}

// VoteDefinition is one immutable poll definition from the catalog.
// A zero StartAt/EndAt means that bound is absent and is not enforced.
type VoteDefinition struct {
	Slug            string       `yaml:"slug" json:"slug"`
	Title           string       `yaml:"title" json:"title"`
	Question        string       `yaml:"question" json:"question"`
	Status          string       `yaml:"status" json:"status"`
	VoteType        VoteType     `yaml:"vote_type" json:"vote_type"`
	StartAt         time.Time    `yaml:"start_at" json:"start_at"`
	EndAt           time.Time    `yaml:"end_at" json:"end_at"`
	AllowComment    bool         `yaml:"allow_comment" json:"allow_comment"`
	CommentRequired bool         `yaml:"comment_required" json:"comment_required,omitempty"`
	MinChoices      *int         `yaml:"min_choices" json:"min_choices,omitempty"`
	MaxChoices      *int         `yaml:"max_choices" json:"max_choices,omitempty"`
	InitialBallots  *int         `yaml:"initial_ballots" json:"-"`
	Options         []VoteOption `yaml:"options" json:"options"`
}

// Request types

// BallotChoice is one picked option within a submitted ballot.
type BallotChoice struct {
	OptionID     string   `json:"option_id"`
	NumericValue *float64 `json:"numeric_value,omitempty"`
	Rank         *int     `json:"rank,omitempty"`
}

type SubmitBallotRequest struct {
	Choices []BallotChoice `json:"choices"`
	Comment string         `json:"comment,omitempty"`
}

// Response types

type SubmitBallotResponse struct {
	BallotID string `json:"ballot_id"`
	Message  string `json:"message"`
}

// DistributionPoint is the tabulated count and percentage for one option,
// ordered per the vote's option order.
type DistributionPoint struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// VoteResultsResponse is the derived results snapshot for display.
// Avg is present only when the vote's options declare numeric values.
type VoteResultsResponse struct {
	VoteType        VoteType            `json:"vote_type"`
	Status          string              `json:"status"`
	Total           int                 `json:"total"`
	Distribution    []DistributionPoint `json:"distribution"`
	Avg             *float64            `json:"avg,omitempty"`
	CommentCount    int                 `json:"comment_count"`
	TotalSelections int                 `json:"total_selections"`
}

type VoteListResponse struct {
	Slugs []string `json:"slugs"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
