package evaluation

import "time"

// GoldenEvent is a hand-labeled event. Its date is DaysAhead days after the
// matcher's clock so the set never goes stale.
type GoldenEvent struct {
	ID             string   `yaml:"id" json:"id"`
	Title          string   `yaml:"title" json:"title"`
	Description    string   `yaml:"description" json:"description"`
	Type           string   `yaml:"type" json:"type"`
	Organization   string   `yaml:"organization" json:"organization"`
	Location       string   `yaml:"location" json:"location"`
	DaysAhead      float64  `yaml:"days_ahead" json:"days_ahead"`
	ExpectedLabels []string `yaml:"expected_labels" json:"expected_labels"`
	Difficulty     string   `yaml:"difficulty" json:"difficulty"` // easy, medium, hard
}

// RankingCase asks for a feed with the given interests and lists the golden
// event IDs that should appear near the top.
type RankingCase struct {
	ID        string   `yaml:"id" json:"id"`
	Interests []string `yaml:"interests" json:"interests"`
	Relevant  []string `yaml:"relevant" json:"relevant"`
}

// GoldenSet is the contents of a golden YAML file
type GoldenSet struct {
	Events   []GoldenEvent `yaml:"events" json:"events"`
	Rankings []RankingCase `yaml:"rankings" json:"rankings"`
}

// LabelMetrics holds classification counts and scores for one label
type LabelMetrics struct {
	Label          string  `json:"label"`
	TruePositives  int     `json:"true_positives"`
	FalsePositives int     `json:"false_positives"`
	FalseNegatives int     `json:"false_negatives"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
}

// EventResult is the classification outcome for one golden event
type EventResult struct {
	EventID    string   `json:"event_id"`
	Expected   []string `json:"expected"`
	Predicted  []string `json:"predicted"`
	Difficulty string   `json:"difficulty"`
}

// Exact reports whether the predicted labels equal the expected ones
func (r EventResult) Exact() bool {
	if len(r.Expected) != len(r.Predicted) {
		return false
	}
	want := toSet(r.Expected)
	for _, label := range r.Predicted {
		if _, ok := want[label]; !ok {
			return false
		}
	}
	return true
}

// RankingResult holds the feed metrics for one ranking case
type RankingResult struct {
	CaseID     string   `json:"case_id"`
	Retrieved  []string `json:"retrieved"`
	MRRAt10    float64  `json:"mrr_at_10"`
	RecallAt10 float64  `json:"recall_at_10"`
}

// DifficultySummary groups exact-match counts by difficulty
type DifficultySummary struct {
	Count        int `json:"count"`
	ExactMatches int `json:"exact_matches"`
}

// EvalSummary holds aggregate metrics across the golden set
type EvalSummary struct {
	TotalEvents    int                           `json:"total_events"`
	ExactMatches   int                           `json:"exact_matches"`
	Labels         []LabelMetrics                `json:"labels"`
	MicroPrecision float64                       `json:"micro_precision"`
	MicroRecall    float64                       `json:"micro_recall"`
	MicroF1        float64                       `json:"micro_f1"`
	MacroF1        float64                       `json:"macro_f1"`
	Mismatches     []EventResult                 `json:"mismatches,omitempty"`
	ByDifficulty   map[string]*DifficultySummary `json:"by_difficulty"`
	Rankings       []RankingResult               `json:"rankings"`
	AvgMRRAt10     float64                       `json:"avg_mrr_at_10"`
	AvgRecallAt10  float64                       `json:"avg_recall_at_10"`
	Duration       time.Duration                 `json:"duration_ns"`
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
