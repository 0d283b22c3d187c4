package matching

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/CodeDreamer16/StarvIn/pkg/config"
)

// NewFromConfig builds a matcher from the matching settings. An empty
// TaxonomyPath selects the built-in taxonomy.
func NewFromConfig(cfg config.MatchingConfig, opts ...Option) (*Matcher, error) {
	weights := Weights{
		Keyword:      cfg.KeywordWeight,
		TypeMatch:    cfg.TypeMatchWeight,
		Recency:      cfg.RecencyWeight,
		RecencyScale: cfg.RecencyScale,
	}
	if err := weights.validate(); err != nil {
		return nil, err
	}

	taxonomy := DefaultTaxonomy()
	if cfg.TaxonomyPath != "" {
		loaded, err := LoadTaxonomy(cfg.TaxonomyPath)
		if err != nil {
			return nil, err
		}
		taxonomy = loaded
	}

	log.Info().
		Str("taxonomy", taxonomySource(cfg.TaxonomyPath)).
		Int("labels", taxonomy.Len()).
		Msg("interest taxonomy loaded")

	return NewMatcher(taxonomy, append([]Option{WithWeights(weights)}, opts...)...), nil
}

func taxonomySource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// validate rejects weights that would make scores NaN or unordered
func (w Weights) validate() error {
	for name, v := range map[string]float64{"keyword": w.Keyword, "type match": w.TypeMatch, "recency": w.Recency} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s weight must be a finite non-negative number, got %v", name, v)
		}
	}
	if w.RecencyScale <= 0 {
		return fmt.Errorf("recency scale must be positive, got %s", w.RecencyScale)
	}
	return nil
}
