package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/triangles/model"
	"github.com/zucenko/triangles/session"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("log level: %v", err)
	}
	logger := log.StandardLogger()
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if cfg.Seed == 0 {
		seed, err := newSeed()
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		cfg.Seed = seed
		log.Printf("Defaulting to random seed %d", seed)
	}

	opts, err := cfg.ModelOptions(logger)
	if err != nil {
		log.Fatalf("model options: %v", err)
	}
	m := model.NewModel(opts)
	s := session.NewSession(m, session.NewBot(cfg.Seed, cfg.Games), session.NewScoreboard(logger), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("session: %v", err)
	}
	for _, r := range s.Results {
		log.WithFields(log.Fields{
			"game":   r.Game,
			"over":   r.Over,
			"scores": r.Scores,
			"winner": r.Winner,
		}).Info("result")
	}
}
