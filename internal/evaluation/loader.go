package evaluation

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/CodeDreamer16/StarvIn/internal/matching"
)

// LoadGoldenSet reads and parses a golden set from a YAML file.
func LoadGoldenSet(path string) (*GoldenSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden set file: %w", err)
	}

	var set GoldenSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse golden set: %w", err)
	}

	return &set, nil
}

var validDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// ValidateGoldenSet checks required fields, unique IDs and that every label is
// in the taxonomy under its canonical spelling.
func ValidateGoldenSet(set *GoldenSet, taxonomy *matching.Taxonomy) error {
	if set == nil || len(set.Events) == 0 {
		return fmt.Errorf("golden set has no events")
	}

	eventIDs := make(map[string]struct{}, len(set.Events))
	for i, e := range set.Events {
		if e.ID == "" {
			return fmt.Errorf("event at index %d: missing id", i)
		}
		if _, dup := eventIDs[e.ID]; dup {
			return fmt.Errorf("event at index %d: duplicate id %q", i, e.ID)
		}
		eventIDs[e.ID] = struct{}{}

		if strings.TrimSpace(e.Title) == "" {
			return fmt.Errorf("event %q: missing title", e.ID)
		}
		if !validDifficulties[e.Difficulty] {
			return fmt.Errorf("event %q: invalid difficulty %q (must be easy/medium/hard)", e.ID, e.Difficulty)
		}
		if err := checkLabels(taxonomy, e.ExpectedLabels); err != nil {
			return fmt.Errorf("event %q: %w", e.ID, err)
		}
	}

	caseIDs := make(map[string]struct{}, len(set.Rankings))
	for i, c := range set.Rankings {
		if c.ID == "" {
			return fmt.Errorf("ranking at index %d: missing id", i)
		}
		if _, dup := caseIDs[c.ID]; dup {
			return fmt.Errorf("ranking at index %d: duplicate id %q", i, c.ID)
		}
		caseIDs[c.ID] = struct{}{}

		if len(c.Interests) == 0 {
			return fmt.Errorf("ranking %q: no interests", c.ID)
		}
		if err := checkLabels(taxonomy, c.Interests); err != nil {
			return fmt.Errorf("ranking %q: %w", c.ID, err)
		}
		if len(c.Relevant) == 0 {
			return fmt.Errorf("ranking %q: no relevant events", c.ID)
		}
		for _, id := range c.Relevant {
			if _, ok := eventIDs[id]; !ok {
				return fmt.Errorf("ranking %q: unknown event %q", c.ID, id)
			}
		}
	}

	return nil
}

func checkLabels(taxonomy *matching.Taxonomy, labels []string) error {
	for _, label := range labels {
		canonical, ok := taxonomy.Canonical(label)
		if !ok {
			return fmt.Errorf("unknown label %q", label)
		}
		if canonical != label {
			return fmt.Errorf("label %q should be written %q", label, canonical)
		}
	}
	return nil
}
