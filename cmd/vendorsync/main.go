package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/phenrril/vendorsync/internal/app"
	"github.com/phenrril/vendorsync/internal/config"
)

func main() {
	configPath := flag.String("config", "config.json", "ruta del config del agente")
	batchSize := flag.Int("batch", 0, "override de batch_size (0 = usar config)")
	flag.Parse()

	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load config")
	}
	if *batchSize > 0 {
		cfg.ImportSettings.BatchSize = *batchSize
	}

	application, err := app.NewApp(cfg, zlog.Logger)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to create app")
	}

	stats, err := application.ImportUC.Run(context.Background())
	if err != nil {
		zlog.Fatal().Err(err).Msg("import aborted")
	}

	zlog.Info().
		Int("total", stats.Total).
		Int("imported", stats.Imported).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Msg("done")
}
