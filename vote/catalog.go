package vote

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meguru-crafts/vote-server/models"
)

// Catalog is the read-only registry of vote definitions, keyed by slug.
// It is loaded once at startup and never mutated afterwards.
type Catalog struct {
	slugs []string
	votes map[string]*models.VoteDefinition
}

type catalogFile struct {
	Votes []models.VoteDefinition `yaml:"votes"`
}

// LoadCatalog reads and validates a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return NewCatalog(file.Votes)
}

// NewCatalog validates the given definitions and builds the slug index.
func NewCatalog(defs []models.VoteDefinition) (*Catalog, error) {
	c := &Catalog{
		slugs: make([]string, 0, len(defs)),
		votes: make(map[string]*models.VoteDefinition, len(defs)),
	}

	for i := range defs {
		def := &defs[i]
		if err := validateDefinition(def); err != nil {
			return nil, fmt.Errorf("vote %q: %w", def.Slug, err)
		}
		if _, exists := c.votes[def.Slug]; exists {
			return nil, fmt.Errorf("duplicate vote slug %q", def.Slug)
		}
		c.votes[def.Slug] = def
		c.slugs = append(c.slugs, def.Slug)
	}

	return c, nil
}

// Get returns the definition for a slug.
func (c *Catalog) Get(slug string) (*models.VoteDefinition, bool) {
	def, ok := c.votes[slug]
	return def, ok
}

// Slugs lists every vote slug in catalog order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.slugs))
	copy(out, c.slugs)
	return out
}

// likertValues is the fixed set of numeric values a likert5 vote maps onto.
var likertValues = []float64{-2, -1, 0, 1, 2}

func validateDefinition(def *models.VoteDefinition) error {
	if def.Slug == "" {
		return fmt.Errorf("slug is required")
	}

	switch def.VoteType {
	case models.TypeYesNo, models.TypeSingle, models.TypeMultiple, models.TypeLikert5:
	default:
		return fmt.Errorf("unsupported vote type %q", def.VoteType)
	}

	switch def.Status {
	case models.StatusDraft, models.StatusOpen, models.StatusClosed:
	default:
		return fmt.Errorf("unsupported status %q", def.Status)
	}

	if len(def.Options) == 0 {
		return fmt.Errorf("at least one option is required")
	}

	seen := make(map[string]bool, len(def.Options))
	for _, opt := range def.Options {
		if opt.ID == "" {
			return fmt.Errorf("option id is required")
		}
		if seen[opt.ID] {
			return fmt.Errorf("duplicate option id %q", opt.ID)
		}
		seen[opt.ID] = true
		if opt.Supporters < 0 {
			return fmt.Errorf("option %q: supporters must not be negative", opt.ID)
		}
	}

	if def.MinChoices != nil && def.MaxChoices != nil && *def.MinChoices > *def.MaxChoices {
		return fmt.Errorf("min_choices %d exceeds max_choices %d", *def.MinChoices, *def.MaxChoices)
	}
	if def.MinChoices != nil && *def.MinChoices > len(def.Options) {
		return fmt.Errorf("min_choices %d exceeds the %d options", *def.MinChoices, len(def.Options))
	}

	if def.VoteType == models.TypeLikert5 {
		return validateLikertScale(def)
	}
	return nil
}

// validateLikertScale requires exactly one option per value in {-2,-1,0,1,2}.
func validateLikertScale(def *models.VoteDefinition) error {
	if len(def.Options) != len(likertValues) {
		return fmt.Errorf("likert5 requires exactly %d options, got %d", len(likertValues), len(def.Options))
	}

	found := make(map[float64]string, len(likertValues))
	for _, opt := range def.Options {
		if opt.NumericValue == nil {
			return fmt.Errorf("option %q: likert5 options require a numeric value", opt.ID)
		}
		if prev, dup := found[*opt.NumericValue]; dup {
			return fmt.Errorf("options %q and %q share numeric value %v", prev, opt.ID, *opt.NumericValue)
		}
		found[*opt.NumericValue] = opt.ID
	}

	for _, v := range likertValues {
		if _, ok := found[v]; !ok {
			return fmt.Errorf("no option maps to likert value %v", v)
		}
	}
	return nil
}
