package evaluation

import (
	"context"
	"fmt"
	"time"

	"github.com/CodeDreamer16/StarvIn/internal/application/services"
	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/matching"
)

const rankingDepth = 10

// Runner scores the matcher against a golden set. Ranking cases go through
// the same FeedService the API serves.
type Runner struct {
	matcher *matching.Matcher
}

func NewRunner(matcher *matching.Matcher) *Runner {
	return &Runner{matcher: matcher}
}

func (r *Runner) Run(ctx context.Context, set *GoldenSet) (*EvalSummary, error) {
	start := time.Now()
	now := r.matcher.Now()

	events := make([]*entities.Event, len(set.Events))
	for i, ge := range set.Events {
		events[i] = ge.toEvent(now)
	}

	summary := &EvalSummary{
		TotalEvents:  len(events),
		ByDifficulty: make(map[string]*DifficultySummary),
	}

	r.classify(summary, set.Events, events)

	if err := r.rank(ctx, summary, set.Rankings, events); err != nil {
		return nil, err
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

func (r *Runner) classify(s *EvalSummary, golden []GoldenEvent, events []*entities.Event) {
	counts := make(map[string]*LabelMetrics)
	count := func(label string) *LabelMetrics {
		m, ok := counts[label]
		if !ok {
			m = &LabelMetrics{Label: label}
			counts[label] = m
		}
		return m
	}

	for i, ge := range golden {
		result := EventResult{
			EventID:    ge.ID,
			Expected:   ge.ExpectedLabels,
			Predicted:  r.matcher.Classify(events[i]),
			Difficulty: ge.Difficulty,
		}

		expected := toSet(result.Expected)
		predicted := toSet(result.Predicted)
		for label := range predicted {
			if _, ok := expected[label]; ok {
				count(label).TruePositives++
			} else {
				count(label).FalsePositives++
			}
		}
		for label := range expected {
			if _, ok := predicted[label]; !ok {
				count(label).FalseNegatives++
			}
		}

		ds, ok := s.ByDifficulty[ge.Difficulty]
		if !ok {
			ds = &DifficultySummary{}
			s.ByDifficulty[ge.Difficulty] = ds
		}
		ds.Count++

		if result.Exact() {
			s.ExactMatches++
			ds.ExactMatches++
		} else {
			s.Mismatches = append(s.Mismatches, result)
		}
	}

	// Report labels in catalog order, then any the catalog does not know.
	ordered := make([]string, 0, len(counts))
	seen := make(map[string]struct{}, len(counts))
	for _, label := range r.matcher.Taxonomy().Labels() {
		if _, ok := counts[label]; ok {
			ordered = append(ordered, label)
			seen[label] = struct{}{}
		}
	}
	for label := range counts {
		if _, ok := seen[label]; !ok {
			ordered = append(ordered, label)
		}
	}

	var tp, fp, fn int
	var f1Sum float64
	for _, label := range ordered {
		m := counts[label]
		m.Precision, m.Recall, m.F1 = PrecisionRecallF1(m.TruePositives, m.FalsePositives, m.FalseNegatives)
		s.Labels = append(s.Labels, *m)
		tp += m.TruePositives
		fp += m.FalsePositives
		fn += m.FalseNegatives
		f1Sum += m.F1
	}

	s.MicroPrecision, s.MicroRecall, s.MicroF1 = PrecisionRecallF1(tp, fp, fn)
	if len(ordered) > 0 {
		s.MacroF1 = f1Sum / float64(len(ordered))
	}
}

func (r *Runner) rank(ctx context.Context, s *EvalSummary, cases []RankingCase, events []*entities.Event) error {
	if len(cases) == 0 {
		return nil
	}

	interests := make(goldenInterests, len(cases))
	for _, c := range cases {
		interests[c.ID] = c.Interests
	}
	feed := services.NewFeedService(goldenEvents(events), interests, r.matcher, rankingDepth, nil)

	for _, c := range cases {
		page, err := feed.GetFeed(ctx, c.ID, 1)
		if err != nil {
			return fmt.Errorf("ranking %q: %w", c.ID, err)
		}

		retrieved := make([]string, len(page.Items))
		for i, item := range page.Items {
			retrieved[i] = item.Event.ID
		}

		result := RankingResult{
			CaseID:     c.ID,
			Retrieved:  retrieved,
			MRRAt10:    MRRAtK(c.Relevant, retrieved, rankingDepth),
			RecallAt10: RecallAtK(c.Relevant, retrieved, rankingDepth),
		}
		s.Rankings = append(s.Rankings, result)
		s.AvgMRRAt10 += result.MRRAt10
		s.AvgRecallAt10 += result.RecallAt10
	}

	n := float64(len(cases))
	s.AvgMRRAt10 /= n
	s.AvgRecallAt10 /= n
	return nil
}

func (ge GoldenEvent) toEvent(now time.Time) *entities.Event {
	return &entities.Event{
		ID:           ge.ID,
		Title:        ge.Title,
		Description:  ge.Description,
		Type:         ge.Type,
		Organization: ge.Organization,
		Location:     ge.Location,
		Date:         now.Add(time.Duration(ge.DaysAhead * float64(24*time.Hour))),
	}
}
