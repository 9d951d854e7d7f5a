package tournament

import "encoding/json"

// jsonMarshalTriple renders a (name, wins, losses) row as a bare JSON
// array, matching the wire package's convention of shedding field names
// for small fixed-shape tuples.
func jsonMarshalTriple(name string, wins, losses int) ([]byte, error) {
	return json.Marshal([3]interface{}{name, wins, losses})
}
