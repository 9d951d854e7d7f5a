// Command backgammon runs one tournament: it reads a startup configuration
// object from stdin, accepts remote players over TCP, moderates the
// tournament, and prints the result to stdout as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jackhoeg/backgammon/admin"
	"github.com/jackhoeg/backgammon/agent"
	"github.com/jackhoeg/backgammon/config"
	"github.com/jackhoeg/backgammon/tournament"
)

var verbose = flag.Bool("verbose", false, "emit debug-level diagnostics")

func main() {
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	if err := run(log); err != nil {
		log.Error().Err(err).Msg("backgammon: fatal")
		os.Exit(1)
	}
}

func run(log zerolog.Logger) error {
	cfg, err := config.Read(os.Stdin)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return errors.Wrap(err, "backgammon: bind listener")
	}
	defer ln.Close()

	printLine("started")

	players, err := tournament.AcceptPlayers(ln, cfg.Players, log)
	if err != nil {
		return err
	}

	t := buildTournament(players, cfg, log)
	if err := t.ModerateTournament(); err != nil {
		return errors.Wrap(err, "backgammon: moderate tournament")
	}

	printLine(t.ReportWinner())
	return nil
}

// Both orchestrators use PolicyEndGame: a cheater short-circuits its match
// in favor of the honest side (or yields no survivor if both cheat) rather
// than being swapped out and replayed. The orchestrators accept any policy,
// but this binary never hands them PolicyReplace, matching the original
// engine.
func buildTournament(players []agent.Agent, cfg config.Config, log zerolog.Logger) tournament.Tournament {
	switch cfg.Type {
	case config.TypeSingleElim:
		return tournament.NewSingleElim(players, admin.PolicyEndGame, cfg.Strategy, log)
	default:
		return tournament.NewRoundRobin(players, admin.PolicyEndGame, cfg.Strategy, log)
	}
}

func printLine(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	_ = enc.Encode(v)
}
