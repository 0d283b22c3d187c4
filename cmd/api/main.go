package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/CodeDreamer16/StarvIn/internal/adapters/cache"
	"github.com/CodeDreamer16/StarvIn/internal/adapters/database"
	"github.com/CodeDreamer16/StarvIn/internal/adapters/search"
	"github.com/CodeDreamer16/StarvIn/internal/api/handlers"
	"github.com/CodeDreamer16/StarvIn/internal/api/routes"
	"github.com/CodeDreamer16/StarvIn/internal/application/services"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/graphql"
	"github.com/CodeDreamer16/StarvIn/internal/graphql/resolvers"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/postgres"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/redis"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/typesense"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/observability"
	"github.com/CodeDreamer16/StarvIn/internal/matching"
	"github.com/CodeDreamer16/StarvIn/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Log.Env, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry, continuing without export")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	matcher, err := matching.NewFromConfig(cfg.Matching)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build interest matcher")
	}

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	if cfg.Database.AutoMigrate {
		if err := database.InitSchema(ctx, pgClient); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database schema")
		}
	}

	// Redis is optional; without it events are read straight from Postgres.
	var eventRepo repositories.EventRepository = database.NewEventAdapter(pgClient)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, event cache disabled")
		} else {
			defer redisClient.Close()
			eventRepo = database.NewCachedEventAdapter(eventRepo, cache.NewRedisAdapter(redisClient), cfg.Feed.CacheTTLSeconds, metrics)
			log.Info().Int("ttl_seconds", cfg.Feed.CacheTTLSeconds).Msg("event cache enabled")
		}
	}

	// Typesense is optional; without it search answers 503.
	var searchRepo repositories.EventSearchRepository
	if cfg.Typesense.Enabled {
		tsClient, err := typesense.NewClient(ctx, &cfg.Typesense)
		if err != nil {
			log.Warn().Err(err).Msg("Typesense unavailable, event search disabled")
		} else {
			adapter := search.NewTypesenseEventAdapter(tsClient, matcher)
			if err := adapter.InitSchema(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to init Typesense schema")
			}
			searchRepo = adapter
		}
	}

	interestRepo := database.NewInterestAdapter(pgClient)

	eventService := services.NewEventService(eventRepo, searchRepo, cfg.Feed.PageSize)
	interestService := services.NewInterestService(interestRepo, matcher.Taxonomy())
	feedService := services.NewFeedService(eventRepo, interestRepo, matcher, cfg.Feed.PageSize, metrics)
	savedEventService := services.NewSavedEventService(database.NewSavedEventAdapter(pgClient), eventRepo)
	applicationService := services.NewApplicationService(database.NewApplicationAdapter(pgClient), eventRepo)
	profileService := services.NewProfileService(database.NewProfileAdapter(pgClient))

	var playground http.Handler
	if cfg.Log.Env == "development" {
		playground = graphql.NewPlayground("/graphql")
		log.Info().Msg("GraphQL playground available at /playground")
	}

	router := routes.NewRouter(routes.Handlers{
		Event:       handlers.NewEventHandler(eventService),
		Interest:    handlers.NewInterestHandler(interestService),
		Feed:        handlers.NewFeedHandler(feedService),
		SavedEvent:  handlers.NewSavedEventHandler(savedEventService),
		Application: handlers.NewApplicationHandler(applicationService),
		Profile:     handlers.NewProfileHandler(profileService),
		GraphQL: graphql.NewServer(resolvers.NewResolver(
			eventService, interestService, feedService, savedEventService, applicationService,
		)),
		Playground: playground,
	}, eventRepo, cfg.Server.AllowedOrigins, metrics)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
