// Package admin implements the single-game moderator: the state machine
// that assigns colors, decides the first mover, drives the turn loop
// against two player agents, and applies one of two cheater-containment
// policies.
package admin

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/jackhoeg/backgammon/agent"
	"github.com/jackhoeg/backgammon/board"
	"github.com/jackhoeg/backgammon/player"
	"github.com/jackhoeg/backgammon/strategy"
)

// ReplacementName is the fixed identity given to a cheater's stand-in
// under the Replace policy. A named constant rather than a hidden global,
// per design: the next Malnati is just a default config value away from
// becoming a different name.
const ReplacementName = "Malnati"

// Policy selects how the administrator contains a detected cheater.
type Policy int

const (
	// PolicyEndGame halts the match the moment a cheater is detected; the
	// surviving color wins outright.
	PolicyEndGame Policy = iota
	// PolicyReplace swaps the cheater's seat for a fresh default local
	// player and continues the match normally.
	PolicyReplace
)

// Winner identifies the outcome of a moderated game relative to the two
// handles the Administrator was constructed with, not to color.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayerOne
	WinnerPlayerTwo
)

// Administrator drives exactly one game between two agent handles to
// completion.
type Administrator struct {
	black, white        agent.Agent
	brd                 board.Board
	playerOneColor      board.Color
	policy              Policy
	replacementStrategy strategy.Name
	rnd                 *rand.Rand
	log                 zerolog.Logger

	blackCheated, whiteCheated bool

	winner     Winner
	winningAgt agent.Agent
}

// New constructs an administrator for one game between playerOne and
// playerTwo. A fair coin decides which handle plays which color.
// replacementStrategy picks the strategy backing a cheater's stand-in
// under PolicyReplace.
func New(playerOne, playerTwo agent.Agent, policy Policy, replacementStrategy strategy.Name, rnd *rand.Rand, log zerolog.Logger) *Administrator {
	a := &Administrator{
		brd:                 board.New(),
		policy:              policy,
		replacementStrategy: replacementStrategy,
		rnd:                 rnd,
		log:                 log,
	}
	if rnd.Intn(2) == 0 {
		a.black, a.white = playerOne, playerTwo
		a.playerOneColor = board.Black
	} else {
		a.black, a.white = playerTwo, playerOne
		a.playerOneColor = board.White
	}
	return a
}

func (a *Administrator) agentFor(c board.Color) agent.Agent {
	if c == board.Black {
		return a.black
	}
	return a.white
}

func (a *Administrator) setAgentFor(c board.Color, ag agent.Agent) {
	if c == board.Black {
		a.black = ag
	} else {
		a.white = ag
	}
}

// rollOpeningDice rolls two distinct dice; the engine re-rolls doubles
// until it gets a non-double, per the startup rule. The lower value is
// conventionally black's, the higher white's, and the color whose die is
// higher moves first — which, under this labeling, is always white; the
// pair is then reused as white's opening roll instead of discarding it.
func rollOpeningDice(rnd *rand.Rand) (low, high uint8) {
	for {
		d1 := uint8(rnd.Intn(6) + 1)
		d2 := uint8(rnd.Intn(6) + 1)
		if d1 == d2 {
			continue
		}
		if d1 < d2 {
			return d1, d2
		}
		return d2, d1
	}
}

// Moderate runs the full game: startup, turn loop, and termination
// notifications. It blocks until the game is decided.
func (a *Administrator) Moderate() {
	low, high := rollOpeningDice(a.rnd)

	blackName := a.black.GetName()
	whiteName := a.white.GetName()
	_ = a.black.StartGame(board.Black, whiteName)
	_ = a.white.StartGame(board.White, blackName)

	if a.applyCheaterPolicy() {
		a.finish()
		return
	}

	current := board.White
	dice := []uint8{low, high}
	for {
		moves := a.agentFor(current).GetTurn(a.brd, dice)
		ok := a.agentFor(current).ValidateTurn(a.brd, dice, moves)
		if !ok {
			if a.applyCheaterPolicy() {
				a.finish()
				return
			}
		} else {
			for _, mv := range moves {
				a.brd.MakeMove(current, mv)
			}
			if a.brd.IsOver() {
				a.declareWinner(current, false)
				a.finish()
				return
			}
		}
		current = current.Opponent()
		dice = board.RollDice(a.rnd)
	}
}

// applyCheaterPolicy inspects both seats for a freshly raised cheat flag
// and reacts per a.policy. It returns true if the game is now decided
// (EndGame policy, at least one cheater) and false if play should
// continue (no cheater yet, or Replace policy absorbed the cheater).
func (a *Administrator) applyCheaterPolicy() bool {
	blackCheat := a.black.HasCheated()
	whiteCheat := a.white.HasCheated()
	if !blackCheat && !whiteCheat {
		return false
	}

	if a.policy == PolicyEndGame {
		switch {
		case blackCheat && whiteCheat:
			a.winner = WinnerNone
			a.winningAgt = nil
		case blackCheat:
			a.declareWinner(board.White, false)
		default:
			a.declareWinner(board.Black, false)
		}
		return true
	}

	if blackCheat && !a.blackCheated {
		a.blackCheated = true
		repl := player.New(ReplacementName, strategy.New(a.replacementStrategy))
		_ = repl.StartGame(board.Black, a.white.GetName())
		a.setAgentFor(board.Black, agent.NewLocal(repl))
	}
	if whiteCheat && !a.whiteCheated {
		a.whiteCheated = true
		repl := player.New(ReplacementName, strategy.New(a.replacementStrategy))
		_ = repl.StartGame(board.White, a.black.GetName())
		a.setAgentFor(board.White, agent.NewLocal(repl))
	}
	return false
}

func (a *Administrator) declareWinner(color board.Color, none bool) {
	if none {
		a.winner = WinnerNone
		a.winningAgt = nil
		return
	}
	a.winningAgt = a.agentFor(color)
	if color == a.playerOneColor {
		a.winner = WinnerPlayerOne
	} else {
		a.winner = WinnerPlayerTwo
	}
}

func (a *Administrator) finish() {
	_ = a.black.EndGame(a.brd, a.winningAgt == a.black)
	_ = a.white.EndGame(a.brd, a.winningAgt == a.white)
}

// Winner returns the game's outcome relative to the two construction
// handles.
func (a *Administrator) Winner() Winner {
	return a.winner
}

// WinningAgent returns the handle that won, or nil on WinnerNone.
func (a *Administrator) WinningAgent() agent.Agent {
	return a.winningAgt
}
