package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/CodeDreamer16/StarvIn/internal/adapters/database"
	"github.com/CodeDreamer16/StarvIn/internal/adapters/search"
	"github.com/CodeDreamer16/StarvIn/internal/application/services"
	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/postgres"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/typesense"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/observability"
	"github.com/CodeDreamer16/StarvIn/internal/matching"
	"github.com/CodeDreamer16/StarvIn/pkg/config"
)

const demoUserID = "demo-student"

type sampleEvent struct {
	title, description, eventType, organization, location, prize string
	daysAhead, deadlineDays                                      int
	tags                                                         []string
}

var sampleEvents = []sampleEvent{
	{title: "Spring Hackathon", description: "48 hours of coding, prizes for the best AI and web projects.", eventType: "hackathon", organization: "CS Society", location: "Engineering Hall", prize: "$2,000", daysAhead: 14, deadlineDays: 7, tags: []string{"tech", "ai"}},
	{title: "Intramural Basketball Tryouts", description: "Join a team for the spring basketball league.", eventType: "sports", organization: "Campus Rec", location: "Main Gym", daysAhead: 3, tags: []string{"sports"}},
	{title: "Free Pizza Study Night", description: "Snacks, pizza and quiet study rooms before finals.", eventType: "social", organization: "Student Union", location: "Library", daysAhead: 1},
	{title: "Consulting Career Fair", description: "Meet recruiters from consulting and finance firms. Bring your resume.", eventType: "career", organization: "Career Center", location: "Ballroom", daysAhead: 10, deadlineDays: 9, tags: []string{"career"}},
	{title: "Open Mic Night", description: "Sing, play guitar or read poetry. Sign up at the door.", eventType: "arts", organization: "Music Club", location: "Coffee House", daysAhead: 5},
	{title: "Startup Pitch Competition", description: "Pitch your startup idea to founders and investors.", eventType: "competition", organization: "Entrepreneurship Club", location: "Business School", prize: "$5,000 seed grant", daysAhead: 21, deadlineDays: 14, tags: []string{"entrepreneurship"}},
	{title: "Beach Cleanup", description: "Volunteer to clean the shoreline with the sustainability team.", eventType: "volunteering", organization: "Green Campus", location: "North Beach", daysAhead: 6},
	{title: "Yoga in the Quad", description: "Morning yoga and mindfulness session. Mats provided.", eventType: "wellness", organization: "Health Services", location: "Main Quad", daysAhead: 2},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger("vybin-seed", cfg.Log.Env, cfg.Log.Level)

	ctx := context.Background()

	matcher, err := matching.NewFromConfig(cfg.Matching)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build matcher")
	}

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	if err := database.InitSchema(ctx, pgClient); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Warn().Msg("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				applications,
				saved_events,
				interests,
				profiles,
				events
			CASCADE
		`)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to reset tables")
		}
	}

	writer := database.NewEventWriter(pgClient)
	now := time.Now().UTC().Truncate(time.Hour)

	events := make([]*entities.Event, 0, len(sampleEvents))
	for _, s := range sampleEvents {
		event := &entities.Event{
			ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte("vybin:event:"+s.title)).String(),
			Title:        s.title,
			Description:  s.description,
			Type:         s.eventType,
			Organization: s.organization,
			Location:     s.location,
			Prize:        s.prize,
			Date:         now.AddDate(0, 0, s.daysAhead),
			Tags:         s.tags,
		}
		if s.deadlineDays > 0 {
			deadline := now.AddDate(0, 0, s.deadlineDays)
			event.Deadline = &deadline
		}

		if err := writer.Upsert(ctx, event); err != nil {
			log.Error().Err(err).Str("title", s.title).Msg("failed to seed event")
			continue
		}
		events = append(events, event)
	}
	log.Info().Int("count", len(events)).Msg("seeded events")

	profile := &entities.Profile{
		UserID:         demoUserID,
		FullName:       "Demo Student",
		University:     "Vybin University",
		Program:        "Computer Science",
		GraduationYear: now.Year() + 2,
	}
	if err := database.NewProfileAdapter(pgClient).Upsert(ctx, profile); err != nil {
		log.Error().Err(err).Msg("failed to seed demo profile")
	}
	interests := services.NewInterestService(database.NewInterestAdapter(pgClient), matcher.Taxonomy())
	demoLabels := []string{"Technology & Innovation", "Food & Dining", "Career & Professional Development"}
	if _, err := interests.ReplaceForUser(ctx, demoUserID, demoLabels); err != nil {
		log.Error().Err(err).Msg("failed to seed demo interests")
	}

	if !cfg.Typesense.Enabled {
		log.Info().Msg("typesense disabled, skipping search indexing")
		return
	}

	tsClient, err := typesense.NewClient(ctx, &cfg.Typesense)
	if err != nil {
		log.Warn().Err(err).Msg("typesense unavailable, skipping search indexing")
		return
	}

	searchRepo := search.NewTypesenseEventAdapter(tsClient, matcher)
	if err := searchRepo.InitSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize search schema")
	}
	for _, event := range events {
		if err := searchRepo.Index(ctx, event); err != nil {
			log.Warn().Err(err).Str("event_id", event.ID).Msg("failed to index event")
		}
	}
	log.Info().Int("count", len(events)).Msg("indexed seeded events")
}
