package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/CodeDreamer16/StarvIn/internal/adapters/database"
	"github.com/CodeDreamer16/StarvIn/internal/adapters/search"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/postgres"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/typesense"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/observability"
	"github.com/CodeDreamer16/StarvIn/internal/matching"
	"github.com/CodeDreamer16/StarvIn/pkg/config"
)

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "drop and recreate the events collection before indexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger("vybin-indexer", cfg.Log.Env, cfg.Log.Level)

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatal().Err(err).Str("interval", intervalValue).Msg("invalid interval")
		}
		if interval <= 0 {
			log.Fatal().Msg("interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, cfg, reset); err != nil {
			log.Error().Err(err).Msg("reindex failed")
		}

		if interval <= 0 {
			break
		}

		reset = false
		log.Info().Dur("next_run_in", interval).Msg("reindex complete")

		select {
		case <-ctx.Done():
			log.Info().Msg("indexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, cfg *config.Config, reset bool) error {
	matcher, err := matching.NewFromConfig(cfg.Matching)
	if err != nil {
		return err
	}

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(ctx, &cfg.Typesense)
	if err != nil {
		return err
	}

	adapter := search.NewTypesenseEventAdapter(tsClient, matcher)
	if reset {
		log.Info().Str("collection", typesense.EventsCollection).Msg("resetting collection")
		if err := adapter.ResetSchema(ctx); err != nil {
			return err
		}
	} else if err := adapter.InitSchema(ctx); err != nil {
		return err
	}

	events, err := database.NewEventAdapter(pgClient).ListUpcoming(ctx, matcher.Now())
	if err != nil {
		return err
	}

	indexed, failed := 0, 0
	for _, event := range events {
		if err := adapter.Index(ctx, event); err != nil {
			failed++
			log.Warn().Err(err).Str("event_id", event.ID).Msg("failed to index event")
			continue
		}
		indexed++
	}

	log.Info().Int("indexed", indexed).Int("failed", failed).Msg("indexed upcoming events")
	if failed > 0 && indexed == 0 {
		return fmt.Errorf("all %d events failed to index", failed)
	}
	return nil
}
