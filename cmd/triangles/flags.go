package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/zucenko/triangles/config"
)

// parseConfig layers flags over the config file and environment.
func parseConfig(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("triangles", flag.ContinueOnError)
	path := fs.String("config", os.Getenv("TRIANGLES_CONFIG"), "path to a YAML board config")
	games := fs.Int("games", 0, "number of games the bot plays")
	seed := fs.Int64("seed", 0, "dice and bot seed, 0 picks one at random")
	rules := fs.String("rules", "", "rule set: strict or classic")
	level := fs.String("log-level", "", "logrus level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return nil, err
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *rules != "" {
		cfg.Rules = *rules
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
