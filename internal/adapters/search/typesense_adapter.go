package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	tsclient "github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/typesense"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

const (
	queryByFields  = "title,tags,interests,organization,description"
	defaultPerPage = 10
)

// TypesenseEventAdapter implements event search using Typesense
type TypesenseEventAdapter struct {
	client     *tsclient.Client
	classifier Classifier
}

// Ensure TypesenseEventAdapter implements EventSearchRepository
var _ repositories.EventSearchRepository = (*TypesenseEventAdapter)(nil)

// NewTypesenseEventAdapter creates a new Typesense adapter. When classifier is
// set each document carries the interest labels the event matches.
func NewTypesenseEventAdapter(client *tsclient.Client, classifier Classifier) *TypesenseEventAdapter {
	return &TypesenseEventAdapter{client: client, classifier: classifier}
}

func eventSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: tsclient.EventsCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "title", Type: "string"},
			{Name: "description", Type: "string"},
			{Name: "type", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "organization", Type: "string", Optional: pointer.True()},
			{Name: "location", Type: "string", Optional: pointer.True()},
			{Name: "tags", Type: "string[]", Optional: pointer.True()},
			{Name: "interests", Type: "string[]", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "date", Type: "int64"},
		},
		DefaultSortingField: pointer.String("date"),
	}
}

// InitSchema ensures the collection exists
func (a *TypesenseEventAdapter) InitSchema(ctx context.Context) error {
	if _, err := a.client.Client().Collection(tsclient.EventsCollection).Retrieve(ctx); err == nil {
		return nil
	}

	if _, err := a.client.Client().Collections().Create(ctx, eventSchema()); err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// ResetSchema drops and recreates the collection
func (a *TypesenseEventAdapter) ResetSchema(ctx context.Context) error {
	if _, err := a.client.Client().Collection(tsclient.EventsCollection).Delete(ctx); err != nil {
		if !strings.Contains(err.Error(), "404") {
			return fmt.Errorf("failed to drop typesense collection: %w", err)
		}
	}
	return a.InitSchema(ctx)
}

// Index upserts an event document
func (a *TypesenseEventAdapter) Index(ctx context.Context, event *entities.Event) error {
	if event == nil {
		return fmt.Errorf("event is nil")
	}

	var interests []string
	if a.classifier != nil {
		interests = a.classifier.Classify(event)
	}

	_, err := a.client.Client().Collection(tsclient.EventsCollection).Documents().Upsert(ctx, buildEventDocument(event, interests))
	if err != nil {
		return fmt.Errorf("failed to index event %s: %w", event.ID, err)
	}
	return nil
}

// Delete removes an event from the index
func (a *TypesenseEventAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(tsclient.EventsCollection).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete event from index: %w", err)
	}
	return nil
}

// Search runs a full-text query over upcoming events
func (a *TypesenseEventAdapter) Search(ctx context.Context, params repositories.EventSearchParams) (*repositories.EventSearchResult, error) {
	result, err := a.client.Client().Collection(tsclient.EventsCollection).Documents().Search(ctx, buildSearchParams(params))
	if err != nil {
		return nil, apperrors.NewExternalError("failed to search events", err)
	}

	out := &repositories.EventSearchResult{IDs: []string{}}
	if result.Found != nil {
		out.TotalCount = *result.Found
	}
	if result.SearchTimeMs != nil {
		out.SearchTime = float64(*result.SearchTimeMs)
	}
	if result.Hits == nil {
		return out, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		if id, ok := (*hit.Document)["id"].(string); ok && id != "" {
			out.IDs = append(out.IDs, id)
		}
	}
	return out, nil
}

func buildSearchParams(params repositories.EventSearchParams) *api.SearchCollectionParams {
	q := strings.TrimSpace(params.Query)
	if q == "" {
		q = "*"
	}
	perPage := params.Limit
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(q),
		QueryBy: pointer.String(queryByFields),
		SortBy:  pointer.String("_text_match:desc,date:asc"),
		Page:    pointer.Int(page),
		PerPage: pointer.Int(perPage),
	}
	if !params.From.IsZero() {
		searchParams.FilterBy = pointer.String(fmt.Sprintf("date:>=%d", params.From.Unix()))
	}
	return searchParams
}
