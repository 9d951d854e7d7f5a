package wire

import (
	"github.com/pkg/errors"

	"github.com/jackhoeg/backgammon/board"
)

// WriteName sends the bare "name" request.
func WriteName(c *Codec) error {
	return c.WriteValue("name")
}

// ReadNameResponse parses {"name": "<string>"}.
func ReadNameResponse(c *Codec) (string, error) {
	var resp struct {
		Name string `json:"name"`
	}
	if err := c.ReadValue(&resp); err != nil {
		return "", err
	}
	return resp.Name, nil
}

// WriteStartGame sends {"start-game": [color, oppName]}.
func WriteStartGame(c *Codec, color board.Color, oppName string) error {
	type req struct {
		StartGame [2]interface{} `json:"start-game"`
	}
	return c.WriteValue(req{StartGame: [2]interface{}{color, oppName}})
}

// WriteTakeTurn sends {"take-turn": [board, dice]}.
func WriteTakeTurn(c *Codec, b board.Board, dice []uint8) error {
	type req struct {
		TakeTurn [2]interface{} `json:"take-turn"`
	}
	return c.WriteValue(req{TakeTurn: [2]interface{}{b, dice}})
}

// ReadTurn parses {"turn": [[start, end], ...]}.
func ReadTurn(c *Codec) ([]board.Move, error) {
	var resp struct {
		Turn []board.Move `json:"turn"`
	}
	if err := c.ReadValue(&resp); err != nil {
		return nil, err
	}
	return resp.Turn, nil
}

// WriteEndGame sends {"end-game": [board, won]}.
func WriteEndGame(c *Codec, b board.Board, won bool) error {
	type req struct {
		EndGame [2]interface{} `json:"end-game"`
	}
	return c.WriteValue(req{EndGame: [2]interface{}{b, won}})
}

// ReadOkay expects the bare string "okay" and errors on anything else.
func ReadOkay(c *Codec) error {
	var resp string
	if err := c.ReadValue(&resp); err != nil {
		return err
	}
	if resp != "okay" {
		return errors.Errorf("wire: expected \"okay\", got %q", resp)
	}
	return nil
}
