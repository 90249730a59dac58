package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/triangles/model"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidBoard  = errors.New("invalid board")
	ErrUnknownRules  = errors.New("unknown rules")
	ErrInvalidColor  = errors.New("invalid color")
	ErrTooFewPlayers = errors.New("at least two players are required")
)

// Settings are the scalar values that environment variables may override.
type Settings struct {
	Width       int    `yaml:"width" env:"TRIANGLES_WIDTH"`
	Height      int    `yaml:"height" env:"TRIANGLES_HEIGHT"`
	MarginX     int    `yaml:"margin_x" env:"TRIANGLES_MARGIN_X"`
	MarginY     int    `yaml:"margin_y" env:"TRIANGLES_MARGIN_Y"`
	Rows        int    `yaml:"rows" env:"TRIANGLES_ROWS"`
	Cols        int    `yaml:"cols" env:"TRIANGLES_COLS"`
	PointRadius int    `yaml:"point_radius" env:"TRIANGLES_POINT_RADIUS"`
	Rules       string `yaml:"rules" env:"TRIANGLES_RULES"`
	Seed        int64  `yaml:"seed" env:"TRIANGLES_SEED"`
	Games       int    `yaml:"games" env:"TRIANGLES_GAMES"`
	LogLevel    string `yaml:"log_level" env:"TRIANGLES_LOG_LEVEL"`
}

type Player struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type Config struct {
	Settings `yaml:",inline"`
	Players  []Player `yaml:"players"`
}

func Default() *Config {
	return &Config{
		Settings: Settings{
			Width:       800,
			Height:      600,
			MarginX:     150,
			MarginY:     100,
			Rows:        4,
			Cols:        5,
			PointRadius: 10,
			Rules:       "strict",
			Games:       1,
			LogLevel:    "info",
		},
		Players: []Player{
			{Name: "Jugador 1", Color: "crimson"},
			{Name: "Jugador 2", Color: "royalblue"},
		},
	}
}

// Load applies the YAML file at path (if any) and then the environment on
// top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		log.Debug("no config file, defaulting board")
	}
	if err := env.Parse(&cfg.Settings); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Rows < 2 || c.Cols < 2:
		return fmt.Errorf("%w: need at least 2x2 points, got %dx%d", ErrInvalidBoard, c.Rows, c.Cols)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidBoard, c.Width, c.Height)
	case c.MarginX < 0 || c.MarginY < 0 || 2*c.MarginX >= c.Width || 2*c.MarginY >= c.Height:
		return fmt.Errorf("%w: margins %d,%d leave no room on %dx%d", ErrInvalidBoard, c.MarginX, c.MarginY, c.Width, c.Height)
	case c.PointRadius <= 0:
		return fmt.Errorf("%w: point radius %d", ErrInvalidBoard, c.PointRadius)
	case len(c.Players) < 2:
		return fmt.Errorf("%w: got %d", ErrTooFewPlayers, len(c.Players))
	}
	if _, err := model.RulesByName(c.Rules); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownRules, c.Rules)
	}
	for _, p := range c.Players {
		if _, err := ParseColor(p.Color); err != nil {
			return fmt.Errorf("player %q: %w", p.Name, err)
		}
	}
	return nil
}

// ModelOptions converts a validated config into model options.
func (c *Config) ModelOptions(logger log.FieldLogger) (model.Options, error) {
	rules, err := model.RulesByName(c.Rules)
	if err != nil {
		return model.Options{}, fmt.Errorf("%w: %q", ErrUnknownRules, c.Rules)
	}
	players := make([]model.PlayerSpec, 0, len(c.Players))
	for _, p := range c.Players {
		col, err := ParseColor(p.Color)
		if err != nil {
			return model.Options{}, fmt.Errorf("player %q: %w", p.Name, err)
		}
		players = append(players, model.PlayerSpec{Name: p.Name, Color: col})
	}
	return model.Options{
		Width:       c.Width,
		Height:      c.Height,
		MarginX:     c.MarginX,
		MarginY:     c.MarginY,
		Rows:        c.Rows,
		Cols:        c.Cols,
		PointRadius: c.PointRadius,
		Players:     players,
		Rules:       rules,
		Dice:        model.NewDice(c.Seed),
		Log:         logger,
	}, nil
}

// ParseColor accepts an SVG colour name ("crimson") or a hex triple
// ("#dc143c", "0xdc143c", "dc143c").
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(name, "#"), "0x")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return HexToRGBA(uint32(u)), nil
}

func HexToRGBA(u uint32) color.RGBA {
	b := uint8(0xff & u)
	g := uint8(0xff & (u >> 8))
	r := uint8(0xff & (u >> 16))
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
