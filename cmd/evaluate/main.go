package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/CodeDreamer16/StarvIn/internal/evaluation"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/observability"
	"github.com/CodeDreamer16/StarvIn/internal/matching"
	"github.com/CodeDreamer16/StarvIn/pkg/config"
)

func main() {
	goldenPath := flag.String("golden", "config/golden_events.yaml", "path to the golden event set")
	taxonomyPath := flag.String("taxonomy", "", "taxonomy file (defaults to TAXONOMY_PATH or the built-in catalog)")
	minMacroF1 := flag.Float64("min-macro-f1", 0, "fail when macro F1 is below this")
	minMicroF1 := flag.Float64("min-micro-f1", 0, "fail when micro F1 is below this")
	minMRR := flag.Float64("min-mrr", 0, "fail when average MRR@10 is below this")
	asJSON := flag.Bool("json", false, "print the summary as JSON")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger("vybin-evaluate", "development", cfg.Log.Level)

	if *taxonomyPath != "" {
		cfg.Matching.TaxonomyPath = *taxonomyPath
	}

	matcher, err := matching.NewFromConfig(cfg.Matching)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build matcher")
	}

	set, err := evaluation.LoadGoldenSet(*goldenPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load golden set")
	}
	if err := evaluation.ValidateGoldenSet(set, matcher.Taxonomy()); err != nil {
		log.Fatal().Err(err).Msg("invalid golden set")
	}

	summary, err := evaluation.NewRunner(matcher).Run(context.Background(), set)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			log.Fatal().Err(err).Msg("failed to encode summary")
		}
	} else {
		printSummary(summary)
	}

	failures := evaluation.NewGuardrails(evaluation.GuardrailConfig{
		MinMacroF1:    *minMacroF1,
		MinMicroF1:    *minMicroF1,
		MinAvgMRRAt10: *minMRR,
	}).Check(summary)
	for _, f := range failures {
		log.Error().Msg(f)
	}
	if len(failures) > 0 {
		os.Exit(1)
	}
}

func printSummary(s *evaluation.EvalSummary) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "LABEL\tTP\tFP\tFN\tPRECISION\tRECALL\tF1")
	for _, m := range s.Labels {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.3f\t%.3f\t%.3f\n",
			m.Label, m.TruePositives, m.FalsePositives, m.FalseNegatives, m.Precision, m.Recall, m.F1)
	}
	w.Flush()

	fmt.Printf("\nEvents: %d  Exact: %d  Micro P/R/F1: %.3f/%.3f/%.3f  Macro F1: %.3f\n",
		s.TotalEvents, s.ExactMatches, s.MicroPrecision, s.MicroRecall, s.MicroF1, s.MacroF1)

	for _, d := range []string{"easy", "medium", "hard"} {
		if ds, ok := s.ByDifficulty[d]; ok {
			fmt.Printf("  %-6s %d/%d exact\n", d, ds.ExactMatches, ds.Count)
		}
	}

	if len(s.Mismatches) > 0 {
		fmt.Println("\nMismatches:")
		for _, m := range s.Mismatches {
			fmt.Printf("  %-20s expected %v, got %v\n", m.EventID, m.Expected, m.Predicted)
		}
	}

	if len(s.Rankings) > 0 {
		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "RANKING\tMRR@10\tRECALL@10\tTOP")
		for _, r := range s.Rankings {
			top := r.Retrieved
			if len(top) > 3 {
				top = top[:3]
			}
			fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%v\n", r.CaseID, r.MRRAt10, r.RecallAt10, top)
		}
		w.Flush()
		fmt.Printf("\nAvg MRR@10: %.3f  Avg Recall@10: %.3f\n", s.AvgMRRAt10, s.AvgRecallAt10)
	}

	fmt.Printf("Took %s\n", s.Duration)
}
