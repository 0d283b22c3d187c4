package search

import (
	"strings"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/pkg/textnorm"
)

// MaxIndexedTags caps the tag array of one document
const MaxIndexedTags = 50

// Classifier returns the interest labels an event matches
type Classifier interface {
	Classify(event *entities.Event) []string
}

func buildEventDocument(event *entities.Event, interests []string) map[string]interface{} {
	if interests == nil {
		interests = []string{}
	}

	return map[string]interface{}{
		"id":           event.ID,
		"title":        event.Title,
		"description":  textnorm.StripMarkup(event.Description),
		"type":         event.Type,
		"organization": event.Organization,
		"location":     event.Location,
		"tags":         buildEventTags(event),
		"interests":    interests,
		"date":         event.Date.Unix(),
	}
}

// buildEventTags returns normalized, de-duplicated tags. Nil input gives nil.
func buildEventTags(event *entities.Event) []string {
	if event == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(event.Tags))
	tags := make([]string, 0, len(event.Tags))
	for _, tag := range event.Tags {
		normalized := strings.TrimSpace(textnorm.Normalize(tag))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		tags = append(tags, normalized)
		if len(tags) == MaxIndexedTags {
			break
		}
	}
	return tags
}
