package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/realverse/internal/client/app"
	"github.com/dmitrijs2005/realverse/internal/client/cli"
	"github.com/dmitrijs2005/realverse/internal/client/config"
	"github.com/dmitrijs2005/realverse/internal/client/medium"
	"github.com/dmitrijs2005/realverse/internal/client/quiz"
	"github.com/dmitrijs2005/realverse/internal/logging"
)

func main() {

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, closeMedium, err := medium.Open(ctx, cfg.Medium, cfg.DataPath, cfg.QuotaBytes)
	if err != nil {
		log.Fatalf("open %s medium: %v", cfg.Medium, err)
	}
	defer func() {
		if err := closeMedium(); err != nil {
			logger.Error(ctx, "close medium", "error", err)
		}
	}()

	deps := app.Deps{
		Medium:        m,
		Logger:        logger,
		MaxImageBytes: cfg.MaxImageBytes,
	}
	if cfg.QuizFile != "" {
		def, err := quiz.LoadDefinition(cfg.QuizFile)
		if err != nil {
			log.Fatalf("%v", err)
		}
		deps.Quiz = &def
	}

	logger.Info(ctx, "starting", "medium", cfg.Medium, "data", cfg.DataPath, "quota", cfg.QuotaBytes)

	a := app.New(ctx, deps)
	cli.NewShell(a, os.Stdin, os.Stdout, logger).Run(ctx)
}
