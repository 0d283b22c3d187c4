package matching

import (
	"fmt"
	"os"
	"strings"

	"github.com/CodeDreamer16/StarvIn/pkg/textnorm"
	"gopkg.in/yaml.v3"
)

// Entry is one interest category and the keywords that indicate it
type Entry struct {
	Label    string   `yaml:"label" json:"label"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Keyword is a compiled keyword or phrase
type Keyword struct {
	Phrase string
	Words  []string
}

type category struct {
	label    string
	keywords []Keyword
}

// Taxonomy maps interest labels to keyword phrases. Lookups are by normalized
// label, so "Arts & Creative" and "arts and creative" are the same category.
// A Taxonomy is immutable once built.
type Taxonomy struct {
	order      []string
	categories map[string]*category
}

type taxonomyFile struct {
	Interests []Entry `yaml:"interests"`
}

// NewTaxonomy compiles entries into a taxonomy. Entries whose labels normalize
// to the same text are merged; duplicate keywords are dropped.
func NewTaxonomy(entries []Entry) *Taxonomy {
	t := &Taxonomy{
		categories: make(map[string]*category, len(entries)),
	}

	seenPhrases := make(map[string]map[string]struct{}, len(entries))

	for _, entry := range entries {
		key := textnorm.Normalize(entry.Label)
		if key == "" {
			continue
		}

		cat, ok := t.categories[key]
		if !ok {
			cat = &category{label: strings.TrimSpace(entry.Label)}
			t.categories[key] = cat
			t.order = append(t.order, key)
			seenPhrases[key] = make(map[string]struct{})
		}

		for _, raw := range entry.Keywords {
			phrase := textnorm.Normalize(raw)
			if phrase == "" {
				continue
			}
			if _, dup := seenPhrases[key][phrase]; dup {
				continue
			}
			seenPhrases[key][phrase] = struct{}{}
			cat.keywords = append(cat.keywords, Keyword{
				Phrase: phrase,
				Words:  strings.Fields(phrase),
			})
		}
	}

	return t
}

// LoadTaxonomy reads a YAML taxonomy file of the form
//
//	interests:
//	  - label: Wellness & Mental Health
//	    keywords: [yoga, meditation, mental health]
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	var file taxonomyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}

	if len(file.Interests) == 0 {
		return nil, fmt.Errorf("taxonomy %s defines no interests", path)
	}

	return NewTaxonomy(file.Interests), nil
}

// Labels returns the display labels in definition order
func (t *Taxonomy) Labels() []string {
	labels := make([]string, 0, len(t.order))
	for _, key := range t.order {
		labels = append(labels, t.categories[key].label)
	}
	return labels
}

// Canonical returns the display label for any spelling of a known label
func (t *Taxonomy) Canonical(label string) (string, bool) {
	cat, ok := t.categories[textnorm.Normalize(label)]
	if !ok {
		return "", false
	}
	return cat.label, true
}

// Keywords returns the compiled keywords for a label, or nil for an unknown label
func (t *Taxonomy) Keywords(label string) []Keyword {
	return t.keywordsFor(textnorm.Normalize(label))
}

// Len returns the number of categories
func (t *Taxonomy) Len() int {
	return len(t.order)
}

func (t *Taxonomy) keywordsFor(normalizedLabel string) []Keyword {
	if t == nil {
		return nil
	}
	cat, ok := t.categories[normalizedLabel]
	if !ok {
		return nil
	}
	return cat.keywords
}
