package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	configapp "shapelog-v0/internal/config/application"
	"shapelog-v0/internal/infrastructure/logger"
	timelineapp "shapelog-v0/internal/timeline/application"
	"shapelog-v0/internal/timeline/domain"
)

func main() {
	app := &cli.App{
		Name:  "shapelog",
		Usage: "render a sampled timeline from an exported body-metrics history",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "history",
				Usage: "path to an exported history JSON file",
			},
			&cli.IntFlag{
				Name:  "max-points",
				Usage: "timeline display budget",
			},
			&cli.StringFlag{
				Name:  "window",
				Usage: "grouping granularity: day, week or month",
			},
			&cli.BoolFlag{
				Name:  "photos-only",
				Usage: "keep only records with a progress photo",
			},
			&cli.IntFlag{
				Name:  "cache-size",
				Usage: "number of rendered timelines kept warm",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "path to a .env file (default: .env)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	// .env may carry the SHAPELOG_LOG_* settings, so load it before
	// building the configured logger
	configapp.LoadEnvFile(logger.DefaultLogger(), c.String("env-file"))

	appLogger := logger.NewLogger()
	logger.SetDefaultLogger(appLogger)

	cfg := configapp.LoadRuntimeConfig(
		c.Int("cache-size"),
		c.Int("max-points"),
		c.String("window"),
		"", "", "",
		c.String("history"),
	)
	if err := cfg.Validate(); err != nil {
		return err
	}

	appLogger.Debug("Reading history file", "path", cfg.HistoryPath)
	raw, err := os.ReadFile(cfg.HistoryPath)
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	records, err := timelineapp.ParseHistory(raw)
	if err != nil {
		return err
	}
	appLogger.Info("Loaded history", "records", len(records))

	service, err := timelineapp.NewService(appLogger, cfg.CacheSize)
	if err != nil {
		return err
	}

	result := service.Render(context.Background(), timelineapp.RenderRequest{
		MaxPoints:  cfg.MaxPoints,
		Window:     domain.ParseWindow(cfg.Window),
		PhotosOnly: c.Bool("photos-only"),
	}, records)

	appLogger.Info("Rendered timeline", "points", len(result.Records))

	out, err := json.MarshalIndent(result.Records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode timeline: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
