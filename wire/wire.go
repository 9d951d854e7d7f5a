// Package wire implements the line-delimited JSON codec the engine speaks
// with remote player programs, and the message envelopes of the protocol
// described in the engine's external interface.
package wire

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Codec frames one JSON value per line over an underlying stream, in
// either direction. It owns buffered reader/writer state the way the
// teacher's line-protocol handler does over a TCP connection.
type Codec struct {
	r *bufio.Reader
	w *bufio.Writer
}

// NewCodec wraps rw for line-delimited JSON I/O.
func NewCodec(rw io.ReadWriter) *Codec {
	return &Codec{r: bufio.NewReader(rw), w: bufio.NewWriter(rw)}
}

// ReadValue blocks for the next line and unmarshals it into v.
func (c *Codec) ReadValue(v interface{}) error {
	line, err := c.r.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			// fall through: a final unterminated line is still usable
		} else {
			return errors.Wrap(err, "wire: read line")
		}
	}
	if err := json.Unmarshal(line, v); err != nil {
		return errors.Wrap(err, "wire: decode line")
	}
	return nil
}

// WriteValue marshals v and writes it as one newline-terminated line,
// flushing immediately so the peer sees it without delay.
func (c *Codec) WriteValue(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "wire: encode line")
	}
	data = append(data, '\n')
	if _, err := c.w.Write(data); err != nil {
		return errors.Wrap(err, "wire: write line")
	}
	return errors.Wrap(c.w.Flush(), "wire: flush")
}
