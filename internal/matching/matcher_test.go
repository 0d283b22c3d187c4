package matching

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
)

var fixedNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func newTestMatcher(taxonomy *Taxonomy) *Matcher {
	return NewMatcher(taxonomy, WithClock(func() time.Time { return fixedNow }))
}

func TestIsRelevant_KeywordAndFallbackCases(t *testing.T) {
	matcher := newTestMatcher(DefaultTaxonomy())

	testCases := []struct {
		name      string
		event     *entities.Event
		interests []string
		expected  bool
	}{
		{
			name: "resume keyword matches career interest",
			event: &entities.Event{
				Title:       "Intro to Resume Writing",
				Type:        "Workshop",
				Description: "Learn resume and cover letter basics",
			},
			interests: []string{"Career & Professional Development"},
			expected:  true,
		},
		{
			name: "yoga keyword matches wellness interest",
			event: &entities.Event{
				Title: "Graduate Yoga Hour",
				Type:  "Wellness Session",
			},
			interests: []string{"Wellness & Mental Health"},
			expected:  true,
		},
		{
			name: "no keyword or type overlap",
			event: &entities.Event{
				Title:       "Random Mixer",
				Type:        "Social",
				Description: "Come hang out",
			},
			interests: []string{"Academic Support & Research"},
			expected:  false,
		},
		{
			name:      "no interests returns everything",
			event:     &entities.Event{Title: "Anything"},
			interests: []string{},
			expected:  true,
		},
		{
			name:      "blank interests count as none",
			event:     &entities.Event{Title: "Anything"},
			interests: []string{"", "  ", "!!"},
			expected:  true,
		},
		{
			name: "any one interest is enough",
			event: &entities.Event{
				Title: "Campus Hackathon",
			},
			interests: []string{"Faith & Spirituality", "Competitions & Hackathons"},
			expected:  true,
		},
		{
			name: "markup in description is ignored",
			event: &entities.Event{
				Title:       "Tuesday Session",
				Description: "<p>Bring your <strong>mat</strong> for <em>meditation</em></p>",
			},
			interests: []string{"Wellness & Mental Health"},
			expected:  true,
		},
		{
			name: "tags and organization are searched",
			event: &entities.Event{
				Title:        "Tuesday Session",
				Organization: "Robotics Society",
				Tags:         []string{"snacks provided"},
			},
			interests: []string{"Technology & Innovation"},
			expected:  true,
		},
		{
			name:      "nil event with interests is not relevant",
			event:     nil,
			interests: []string{"Arts & Creative"},
			expected:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, matcher.IsRelevant(tc.event, tc.interests))
			assert.Equal(t, tc.expected, matcher.Match(tc.event, tc.interests).Relevant)
		})
	}
}

func TestIsRelevant_DirectTypeMatch(t *testing.T) {
	// empty taxonomy: only the type field can match
	matcher := newTestMatcher(NewTaxonomy(nil))

	event := &entities.Event{Title: "Untitled", Type: "Arts & Creative Showcase"}

	assert.True(t, matcher.IsRelevant(event, []string{"Arts & Creative"}))
	assert.True(t, matcher.IsRelevant(event, []string{"arts and creative"}))
	assert.False(t, matcher.IsRelevant(event, []string{"Sports & Fitness"}))

	result := matcher.Match(event, []string{"Arts & Creative"})
	assert.Equal(t, []string{"Arts & Creative"}, result.TypeMatchedLabels)
	assert.Empty(t, result.KeywordHits)
}

func TestIsRelevant_UnknownLabelStillMatchesType(t *testing.T) {
	matcher := newTestMatcher(DefaultTaxonomy())
	event := &entities.Event{Title: "Quarterly meeting", Type: "Robotics Club"}

	assert.True(t, matcher.IsRelevant(event, []string{"Robotics"}))
	assert.False(t, matcher.IsRelevant(event, []string{"Knitting Circle"}))
}

func TestIsRelevant_WholeWordsOnly(t *testing.T) {
	matcher := newTestMatcher(NewTaxonomy([]Entry{{Label: "Arts", Keywords: []string{"art"}}}))

	assert.False(t, matcher.IsRelevant(&entities.Event{Title: "Smart Campus Tour"}, []string{"Arts"}))
	assert.False(t, matcher.IsRelevant(&entities.Event{Title: "Starting Line"}, []string{"Arts"}))
	assert.True(t, matcher.IsRelevant(&entities.Event{Title: "Art Night"}, []string{"Arts"}))
}

func TestIsRelevant_PhraseWordsInAnyOrder(t *testing.T) {
	matcher := newTestMatcher(NewTaxonomy([]Entry{{Label: "Wellness", Keywords: []string{"mental health"}}}))

	assert.True(t, matcher.IsRelevant(&entities.Event{Title: "Health of the mental kind"}, []string{"Wellness"}))
	assert.True(t, matcher.IsRelevant(&entities.Event{Title: "Mental Health Monday"}, []string{"Wellness"}))
	assert.False(t, matcher.IsRelevant(&entities.Event{Title: "Mental Math"}, []string{"Wellness"}))
}

func TestScore_MoreKeywordHitsWins(t *testing.T) {
	taxonomy := NewTaxonomy([]Entry{{
		Label:    "Career",
		Keywords: []string{"resume", "interview", "career", "networking", "internship"},
	}})
	matcher := newTestMatcher(taxonomy)
	interests := []string{"Career"}

	strong := &entities.Event{
		Title:       "Career Networking Night",
		Description: "Resume reviews, mock interview practice and internship leads",
		Date:        fixedNow.Add(30 * 24 * time.Hour),
	}
	weak := &entities.Event{
		Title: "Resume Drop-in",
		Date:  fixedNow.Add(time.Hour),
	}

	require.True(t, matcher.IsRelevant(strong, interests))
	require.True(t, matcher.IsRelevant(weak, interests))

	strongResult := matcher.Match(strong, interests)
	assert.Len(t, strongResult.KeywordHits, 5)
	assert.Len(t, matcher.Match(weak, interests).KeywordHits, 1)

	assert.Greater(t, matcher.ScoreForOrdering(strong, interests), matcher.ScoreForOrdering(weak, interests))
}

func TestScore_SoonerEventScoresHigher(t *testing.T) {
	matcher := newTestMatcher(DefaultTaxonomy())
	interests := []string{"Wellness & Mental Health"}

	soon := &entities.Event{Title: "Yoga", Date: fixedNow.Add(2 * time.Hour)}
	later := &entities.Event{Title: "Yoga", Date: fixedNow.Add(20 * 24 * time.Hour)}
	past := &entities.Event{Title: "Yoga", Date: fixedNow.Add(-20 * 24 * time.Hour)}

	assert.Greater(t, matcher.ScoreForOrdering(soon, interests), matcher.ScoreForOrdering(later, interests))
	assert.InDelta(t, matcher.ScoreForOrdering(later, interests), matcher.ScoreForOrdering(past, interests), 1e-9)
}

func TestScore_RecencyBonusIsBounded(t *testing.T) {
	weights := DefaultWeights()
	matcher := newTestMatcher(NewTaxonomy(nil))

	now := matcher.Match(&entities.Event{Date: fixedNow}, nil)
	assert.InDelta(t, weights.Recency, now.RecencyBonus, 1e-9)

	farAway := matcher.Match(&entities.Event{Date: fixedNow.Add(10 * 365 * 24 * time.Hour)}, nil)
	assert.Less(t, farAway.RecencyBonus, 0.1)
	assert.Greater(t, farAway.RecencyBonus, 0.0)

	undated := matcher.Match(&entities.Event{}, nil)
	assert.Zero(t, undated.RecencyBonus)
}

func TestScore_DistinctHitsAcrossInterests(t *testing.T) {
	taxonomy := NewTaxonomy([]Entry{
		{Label: "A", Keywords: []string{"pitch", "startup"}},
		{Label: "B", Keywords: []string{"pitch", "competition"}},
	})
	matcher := NewMatcher(taxonomy,
		WithClock(func() time.Time { return fixedNow }),
		WithWeights(Weights{Keyword: 1, TypeMatch: 1, Recency: 0, RecencyScale: time.Hour}),
	)

	result := matcher.Match(&entities.Event{Title: "Startup Pitch Competition"}, []string{"A", "B", "a"})

	assert.True(t, result.Relevant)
	assert.Equal(t, []string{"A", "B"}, result.MatchedLabels)
	assert.ElementsMatch(t, []string{"pitch", "startup", "competition"}, result.KeywordHits)
	assert.InDelta(t, 3.0, result.Score, 1e-9)
}

func TestNewMatcher_NilTaxonomy(t *testing.T) {
	matcher := NewMatcher(nil)
	assert.NotNil(t, matcher.Taxonomy())
	assert.False(t, matcher.IsRelevant(&entities.Event{Title: "Yoga"}, []string{"Wellness"}))
}

func TestClassify_ReturnsLabelsInTaxonomyOrder(t *testing.T) {
	taxonomy := NewTaxonomy([]Entry{
		{Label: "Sports & Fitness", Keywords: []string{"yoga", "run club"}},
		{Label: "Arts & Creative", Keywords: []string{"painting", "pottery"}},
		{Label: "Food & Dining", Keywords: []string{"brunch"}},
	})
	matcher := newTestMatcher(taxonomy)

	labels := matcher.Classify(&entities.Event{
		Title:       "Pottery then Yoga",
		Description: "Wind down after class",
	})
	assert.Equal(t, []string{"Sports & Fitness", "Arts & Creative"}, labels)

	assert.Empty(t, matcher.Classify(&entities.Event{Title: "Library orientation"}))
}

func TestMatcher_ConcurrentUse(t *testing.T) {
	matcher := newTestMatcher(DefaultTaxonomy())
	event := &entities.Event{
		Title:       "Hackathon Kickoff",
		Description: "<p>Teams, <b>prizes</b> &amp; pizza</p>",
		Date:        fixedNow.Add(48 * time.Hour),
	}
	interests := []string{"Competitions & Hackathons", "Food & Dining"}
	expected := matcher.ScoreForOrdering(event, interests)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, expected, matcher.ScoreForOrdering(event, interests))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMatch(b *testing.B) {
	matcher := NewMatcher(DefaultTaxonomy())
	event := &entities.Event{
		Title:        "Women in Tech Networking Night",
		Description:  "<p>Meet recruiters, get your <b>resume</b> reviewed and enjoy free food.</p>",
		Type:         "Networking",
		Organization: "Computer Science Society",
		Tags:         []string{"career", "technology"},
		Date:         time.Now().Add(72 * time.Hour),
	}
	interests := []string{"Career & Professional Development", "Technology & Innovation", "Food & Dining"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Match(event, interests)
	}
}
