// Package matching decides whether an event is relevant to a user's interests
// and scores relevant events for ordering.
package matching

import (
	"strings"
	"time"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/pkg/textnorm"
)

// Weights tunes the ordering score. Only monotonicity is guaranteed: more
// keyword hits never lower the score, and neither does a closer event date.
type Weights struct {
	Keyword      float64
	TypeMatch    float64
	Recency      float64
	RecencyScale time.Duration
}

// DefaultWeights returns weights where one keyword hit outweighs the whole
// recency bonus.
func DefaultWeights() Weights {
	return Weights{
		Keyword:      10,
		TypeMatch:    10,
		Recency:      5,
		RecencyScale: 72 * time.Hour,
	}
}

// MatchResult explains how an event relates to a set of interest labels
type MatchResult struct {
	Relevant          bool     `json:"relevant"`
	Score             float64  `json:"score"`
	MatchedLabels     []string `json:"matched_labels,omitempty"`
	TypeMatchedLabels []string `json:"type_matched_labels,omitempty"`
	KeywordHits       []string `json:"keyword_hits,omitempty"`
	RecencyBonus      float64  `json:"recency_bonus"`
}

// Option configures a Matcher
type Option func(*Matcher)

// WithWeights overrides the scoring weights
func WithWeights(w Weights) Option {
	return func(m *Matcher) {
		m.weights = w
	}
}

// WithClock overrides the time source used for the recency bonus
func WithClock(now func() time.Time) Option {
	return func(m *Matcher) {
		if now != nil {
			m.now = now
		}
	}
}

// Matcher is stateless after construction and safe for concurrent use
type Matcher struct {
	taxonomy *Taxonomy
	weights  Weights
	now      func() time.Time
}

// NewMatcher creates a matcher over the given taxonomy. A nil taxonomy matches
// on the event type only.
func NewMatcher(taxonomy *Taxonomy, opts ...Option) *Matcher {
	if taxonomy == nil {
		taxonomy = NewTaxonomy(nil)
	}
	m := &Matcher{
		taxonomy: taxonomy,
		weights:  DefaultWeights(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.weights.RecencyScale <= 0 {
		m.weights.RecencyScale = DefaultWeights().RecencyScale
	}
	return m
}

// Taxonomy returns the taxonomy the matcher was built with
func (m *Matcher) Taxonomy() *Taxonomy {
	return m.taxonomy
}

// Now returns the matcher's current time
func (m *Matcher) Now() time.Time {
	return m.now()
}

type label struct {
	display    string
	normalized string
}

type document struct {
	words    map[string]struct{}
	typeText string
}

// IsRelevant reports whether the event matches any of the labels. An empty
// label list (after dropping blank labels) matches every event.
func (m *Matcher) IsRelevant(event *entities.Event, labels []string) bool {
	normalized := normalizeLabels(labels)
	if len(normalized) == 0 {
		return true
	}

	doc := buildDocument(event)
	for _, l := range normalized {
		if doc.typeMatches(l.normalized) {
			return true
		}
		for _, kw := range m.taxonomy.keywordsFor(l.normalized) {
			if doc.containsAll(kw.Words) {
				return true
			}
		}
	}
	return false
}

// ScoreForOrdering returns the ordering score of the event. It is only
// meaningful for events IsRelevant accepts.
func (m *Matcher) ScoreForOrdering(event *entities.Event, labels []string) float64 {
	return m.Match(event, labels).Score
}

// Match evaluates every label and returns the full result
func (m *Matcher) Match(event *entities.Event, labels []string) MatchResult {
	result := MatchResult{
		RecencyBonus: m.recencyBonus(event),
	}

	normalized := normalizeLabels(labels)
	if len(normalized) == 0 {
		result.Relevant = true
		result.Score = result.RecencyBonus
		return result
	}

	doc := buildDocument(event)
	hits := make(map[string]struct{})

	for _, l := range normalized {
		matched := false

		if doc.typeMatches(l.normalized) {
			matched = true
			result.TypeMatchedLabels = append(result.TypeMatchedLabels, l.display)
		}

		for _, kw := range m.taxonomy.keywordsFor(l.normalized) {
			if !doc.containsAll(kw.Words) {
				continue
			}
			matched = true
			if _, seen := hits[kw.Phrase]; !seen {
				hits[kw.Phrase] = struct{}{}
				result.KeywordHits = append(result.KeywordHits, kw.Phrase)
			}
		}

		if matched {
			result.MatchedLabels = append(result.MatchedLabels, l.display)
		}
	}

	result.Relevant = len(result.MatchedLabels) > 0
	result.Score = m.weights.Keyword*float64(len(result.KeywordHits)) +
		m.weights.TypeMatch*float64(len(result.TypeMatchedLabels)) +
		result.RecencyBonus

	return result
}

// Classify returns every taxonomy label the event matches, in taxonomy order
func (m *Matcher) Classify(event *entities.Event) []string {
	return m.Match(event, m.taxonomy.Labels()).MatchedLabels
}

// recencyBonus decays from Recency towards zero as the event moves away from now
func (m *Matcher) recencyBonus(event *entities.Event) float64 {
	if event == nil || event.Date.IsZero() || m.weights.Recency <= 0 {
		return 0
	}
	distance := event.Date.Sub(m.now())
	if distance < 0 {
		distance = -distance
	}
	return m.weights.Recency / (1 + float64(distance)/float64(m.weights.RecencyScale))
}

func normalizeLabels(labels []string) []label {
	out := make([]label, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, raw := range labels {
		n := textnorm.Normalize(raw)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, label{display: strings.TrimSpace(raw), normalized: n})
	}
	return out
}

func buildDocument(event *entities.Event) document {
	if event == nil {
		return document{words: map[string]struct{}{}}
	}

	parts := make([]string, 0, 3+len(event.Tags))
	parts = append(parts, event.Title, event.Description, event.Organization)
	parts = append(parts, event.Tags...)

	// fields are normalized one by one so markup in one cannot swallow another
	words := make(map[string]struct{})
	for _, part := range parts {
		for _, w := range textnorm.Words(part) {
			words[w] = struct{}{}
		}
	}

	return document{
		words:    words,
		typeText: textnorm.Normalize(event.Type),
	}
}

func (d document) typeMatches(normalizedLabel string) bool {
	return d.typeText != "" && strings.Contains(d.typeText, normalizedLabel)
}

func (d document) containsAll(words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if _, ok := d.words[w]; !ok {
			return false
		}
	}
	return true
}
