// Package config reads the single-line JSON tournament configuration the
// engine expects on stdin and turns it into the pieces main needs to start
// a listener and build the right orchestrator.
package config

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/jackhoeg/backgammon/strategy"
)

// Type selects which orchestrator moderates the tournament.
type Type string

const (
	TypeRoundRobin Type = "round robin"
	TypeSingleElim Type = "single elimination"
)

// Config is the parsed form of the stdin startup object:
// {"players": <N>, "port": <u16>, "type": "round robin"|"single elimination"}
// plus the optional "strategy" field (original_source's AdminConfig
// supplement) selecting the strategy backing filler/replacement players.
type Config struct {
	Players  int
	Port     uint16
	Type     Type
	Strategy strategy.Name
}

type wireConfig struct {
	Players  int    `json:"players"`
	Port     uint16 `json:"port"`
	Type     string `json:"type"`
	Strategy string `json:"strategy"`
}

// Read parses exactly one JSON object from r (stdin in normal operation).
func Read(r io.Reader) (Config, error) {
	var w wireConfig
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return Config{}, errors.Wrap(err, "config: decode startup object")
	}

	cfg := Config{Players: w.Players, Port: w.Port}

	switch Type(w.Type) {
	case TypeRoundRobin, TypeSingleElim:
		cfg.Type = Type(w.Type)
	default:
		return Config{}, errors.Errorf("config: type %q, want %q or %q", w.Type, TypeRoundRobin, TypeSingleElim)
	}

	if cfg.Players < 2 {
		return Config{}, errors.Errorf("config: players = %d, want >= 2", cfg.Players)
	}

	switch w.Strategy {
	case "", "rando":
		cfg.Strategy = strategy.NameRando
	case "bopsy":
		cfg.Strategy = strategy.NameBopsy
	case "smart":
		cfg.Strategy = strategy.NameSmart
	default:
		return Config{}, errors.Errorf("config: strategy %q, want \"rando\", \"bopsy\", or \"smart\"", w.Strategy)
	}

	return cfg, nil
}
