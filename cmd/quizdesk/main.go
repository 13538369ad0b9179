package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"quizdesk/internal/cli"
	"quizdesk/internal/config"
	"quizdesk/internal/quiz"
	"quizdesk/internal/quiz/seed"
	"quizdesk/internal/quiz/sqlite"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed to load config: " + err.Error())
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	store, err := sqlite.NewStore(cfg.DB.Path)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	defer store.Close()

	seeder := seed.NewSeeder(store, logger)
	if err := seeder.EnsureReady(context.Background()); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	service := quiz.NewService(store, cfg.Quiz.MaxQuestions, nil, logger)
	editor := quiz.NewEditor(store, cfg.Admin.StrictDuplicates, logger)
	app := cli.New(service, editor, cfg.Admin.Password, logger)

	if err := app.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
