package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/todmy/forecast-values/internal/report"
	"github.com/todmy/forecast-values/internal/screening"
	"github.com/todmy/forecast-values/pkg/config"
	"github.com/todmy/forecast-values/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("FVALUES_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	screener := screening.NewScreener(screening.Config{
		ProbabilityWarnOnEdge: cfg.Screening.ProbabilityWarnOnEdge,
		MissingCheck:          cfg.Screening.MissingCheck,
	})

	declared, events := screener.BuildThresholds(cfg.Thresholds)

	reporter := report.NewReporter(logger.Log)
	reporter.Report(events...)

	summary := reporter.Summary()
	logger.Info("Screening finished",
		zap.Int("thresholds", len(declared)),
		zap.Int("errors", summary.Error),
		zap.Int("warnings", summary.Warn),
	)

	out := make([]string, 0, len(declared))
	for _, d := range declared {
		if d.IsProbability() {
			out = append(out, fmt.Sprintf("%s: %s", d.Name, d.Probability))
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s %s", d.Name, d.Threshold, d.Units))
	}
	if err := json.NewEncoder(os.Stdout).Encode(map[string]any{
		"thresholds": out,
		"summary":    summary,
	}); err != nil {
		log.Fatalf("Failed to write result: %v", err)
	}

	if summary.Error > 0 {
		logger.Sync()
		os.Exit(1)
	}
}
