package agent

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jackhoeg/backgammon/board"
	"github.com/jackhoeg/backgammon/view"
	"github.com/jackhoeg/backgammon/wire"
)

// Remote adapts an untrusted socket peer to the Agent interface. Every
// protocol fault — a dropped connection, malformed JSON, the wrong reply
// token, or a move sequence the shadow validator rejects — sets the
// sticky cheated flag and the peer is never contacted again.
//
// name and the cheat flag are held behind pointers so that Duplicate can
// hand out an independent Agent value that still shares the identity and
// cheat history of the one underlying connection, per the duplicate()
// contract: a clone, not a fresh peer.
type Remote struct {
	id    uuid.UUID
	codec *wire.Codec
	log   zerolog.Logger

	name  *string
	color board.Color
	cheat *cheatFlag
}

// NewRemote wraps codec (a line-delimited JSON stream to the peer) as a
// fresh Remote agent, logging under log with a correlation id that never
// crosses the wire — it exists purely for tying diagnostic lines to one
// connection.
func NewRemote(codec *wire.Codec, log zerolog.Logger) *Remote {
	id := uuid.New()
	name := ""
	return &Remote{
		id:    id,
		codec: codec,
		log:   log.With().Str("peer_id", id.String()).Logger(),
		name:  &name,
		cheat: &cheatFlag{},
	}
}

func (r *Remote) markCheated(reason string, err error) {
	r.cheat.set()
	r.log.Warn().Err(err).Str("reason", reason).Msg("remote player marked cheated")
}

func (r *Remote) StartGame(color board.Color, oppName string) error {
	if r.cheat.get() {
		return nil
	}
	r.color = color
	if err := wire.WriteStartGame(r.codec, color, oppName); err != nil {
		r.markCheated("start-game write", err)
		return nil
	}
	if err := wire.ReadOkay(r.codec); err != nil {
		r.markCheated("start-game reply", err)
		return nil
	}
	return nil
}

func (r *Remote) GetName() string {
	if *r.name != "" || r.cheat.get() {
		return *r.name
	}
	if err := wire.WriteName(r.codec); err != nil {
		r.markCheated("name request", err)
		return ""
	}
	got, err := wire.ReadNameResponse(r.codec)
	if err != nil {
		r.markCheated("name reply", err)
		return ""
	}
	*r.name = got
	return got
}

func (r *Remote) GetTurn(b board.Board, dice []uint8) []board.Move {
	if r.cheat.get() {
		return nil
	}
	if err := wire.WriteTakeTurn(r.codec, b, dice); err != nil {
		r.markCheated("take-turn write", err)
		return nil
	}
	moves, err := wire.ReadTurn(r.codec)
	if err != nil {
		r.markCheated("take-turn reply", err)
		return nil
	}
	return moves
}

// ValidateTurn re-derives the legal forest and checks moves against it —
// the "shadow validator" — rather than trusting the peer's own claim.
func (r *Remote) ValidateTurn(b board.Board, dice []uint8, moves []board.Move) bool {
	if r.cheat.get() {
		return false
	}
	root := view.GenerateTree(b, r.color, dice)
	if !view.ValidateTurn(root, moves) {
		r.markCheated("turn validation", nil)
		return false
	}
	return true
}

func (r *Remote) EndGame(b board.Board, won bool) error {
	if r.cheat.get() {
		return nil
	}
	if err := wire.WriteEndGame(r.codec, b, won); err != nil {
		r.markCheated("end-game write", err)
		return nil
	}
	if err := wire.ReadOkay(r.codec); err != nil {
		r.markCheated("end-game reply", err)
		return nil
	}
	return nil
}

func (r *Remote) HasCheated() bool {
	return r.cheat.get()
}

func (r *Remote) GetColor() board.Color {
	return r.color
}

// Duplicate returns a new handle sharing this peer's connection, cached
// name, and cheat history, with a fresh (unassigned) color ready for the
// next game it is handed to.
func (r *Remote) Duplicate() Agent {
	return &Remote{
		id:    r.id,
		codec: r.codec,
		log:   r.log,
		name:  r.name,
		cheat: r.cheat,
	}
}
