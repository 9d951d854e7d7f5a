package board

import "encoding/json"

// Move is an ordered (start, end) pair of point indices in world
// coordinates (before any per-player perspective flip).
type Move struct {
	Start uint8
	End   uint8
}

// MarshalJSON renders a move as the two-element wire array
// [<start>, <end>], with "bar"/"home" substituted at the boundaries.
func (m Move) MarshalJSON() ([]byte, error) {
	start, err := marshalPoint(m.Start)
	if err != nil {
		return nil, err
	}
	end, err := marshalPoint(m.End)
	if err != nil {
		return nil, err
	}
	return json.Marshal([2]json.RawMessage{start, end})
}

// UnmarshalJSON parses the two-element wire array form of a move.
func (m *Move) UnmarshalJSON(data []byte) error {
	var arr [2]json.RawMessage
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	start, err := unmarshalPoint(arr[0])
	if err != nil {
		return err
	}
	end, err := unmarshalPoint(arr[1])
	if err != nil {
		return err
	}
	m.Start, m.End = start, end
	return nil
}
