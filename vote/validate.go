package vote

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/meguru-crafts/vote-server/models"
)

const maxCommentRunes = 2000

// PreparedChoice is a ballot choice resolved against the vote definition,
// ready for aggregation.
type PreparedChoice struct {
	Option       models.VoteOption
	NumericValue *float64
	Rank         *int
}

// checkWindow gates submissions on status and the voting window,
// distinguishing not-open, not-yet-started, and ended.
func checkWindow(def *models.VoteDefinition, now time.Time) error {
	if def.Status != models.StatusOpen {
		return &WindowError{
			Reason:  WindowNotOpen,
			Message: "this vote is not open for ballots",
		}
	}
	if !def.StartAt.IsZero() && now.Before(def.StartAt) {
		return &WindowError{
			Reason:  WindowNotStarted,
			Message: "voting has not started yet; it opens " + humanize.Time(def.StartAt),
		}
	}
	if !def.EndAt.IsZero() && now.After(def.EndAt) {
		return &WindowError{
			Reason:  WindowEnded,
			Message: "voting ended " + humanize.Time(def.EndAt),
		}
	}
	return nil
}

// validateBallot runs every ballot check in order and returns the prepared
// choices plus the normalized comment. It is side-effect free: a failure at
// any step must leave the caller's state untouched.
func validateBallot(def *models.VoteDefinition, ballot models.SubmitBallotRequest, now time.Time) ([]PreparedChoice, string, error) {
	if err := checkWindow(def, now); err != nil {
		return nil, "", err
	}

	if len(ballot.Choices) == 0 {
		return nil, "", invalidf("at least one choice is required")
	}

	seen := make(map[string]bool, len(ballot.Choices))
	prepared := make([]PreparedChoice, 0, len(ballot.Choices))
	for _, choice := range ballot.Choices {
		if choice.OptionID == "" {
			return nil, "", invalidf("a choice is missing its option id")
		}
		option, ok := findOption(def, choice.OptionID)
		if !ok {
			return nil, "", invalidf("unknown option %q", choice.OptionID)
		}
		if seen[choice.OptionID] {
			return nil, "", invalidf("option %q appears more than once", choice.OptionID)
		}
		seen[choice.OptionID] = true
		prepared = append(prepared, PreparedChoice{
			Option:       option,
			NumericValue: choice.NumericValue,
			Rank:         choice.Rank,
		})
	}

	if err := checkCardinality(def, len(prepared)); err != nil {
		return nil, "", err
	}

	if def.VoteType == models.TypeLikert5 {
		if err := checkLikertValue(prepared[0]); err != nil {
			return nil, "", err
		}
	}

	comment, err := normalizeComment(def, ballot.Comment)
	if err != nil {
		return nil, "", err
	}

	return prepared, comment, nil
}

func findOption(def *models.VoteDefinition, optionID string) (models.VoteOption, bool) {
	for _, opt := range def.Options {
		if opt.ID == optionID {
			return opt, true
		}
	}
	return models.VoteOption{}, false
}

// checkCardinality enforces the number of distinct choices per vote type.
// Single-pick types always collapse to exactly one; multiple votes honor
// min_choices/max_choices with defaults of 1 and the option count.
func checkCardinality(def *models.VoteDefinition, choices int) error {
	switch def.VoteType {
	case models.TypeYesNo, models.TypeSingle, models.TypeLikert5:
		if choices != 1 {
			return invalidf("this vote accepts exactly one choice")
		}
	case models.TypeMultiple:
		minimum := 1
		if def.MinChoices != nil {
			minimum = *def.MinChoices
		}
		maximum := len(def.Options)
		if def.MaxChoices != nil {
			maximum = *def.MaxChoices
		}
		if choices < minimum || choices > maximum {
			return invalidf("choose between %d and %d options", minimum, maximum)
		}
	default:
		return invalidf("unsupported vote type %q", def.VoteType)
	}
	return nil
}

// checkLikertValue requires the submitted value to be in the allowed scale
// and to agree with the chosen option's declared value, guarding against a
// client sending an internally inconsistent label/value pair.
func checkLikertValue(choice PreparedChoice) error {
	if choice.NumericValue == nil {
		return invalidf("a numeric value is required for this vote")
	}
	allowed := false
	for _, v := range likertValues {
		if *choice.NumericValue == v {
			allowed = true
			break
		}
	}
	if !allowed {
		return invalidf("numeric value %v is not on the scale", *choice.NumericValue)
	}
	if declared := choice.Option.NumericValue; declared != nil && *declared != *choice.NumericValue {
		return invalidf("numeric value does not match the chosen option")
	}
	return nil
}

// normalizeComment trims the comment and enforces the vote's comment
// policy. A whitespace-only comment is treated as absent.
func normalizeComment(def *models.VoteDefinition, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if def.AllowComment && def.CommentRequired {
			return "", invalidf("a comment is required for this vote")
		}
		return "", nil
	}
	if !def.AllowComment {
		return "", invalidf("this vote does not accept comments")
	}
	if utf8.RuneCountInString(trimmed) > maxCommentRunes {
		return "", invalidf("comment must be %d characters or fewer", maxCommentRunes)
	}
	return trimmed, nil
}
