package model

import "encoding/json"

// Marker values embedded in projections when a payload cannot be decoded.
// Surfacing markers instead of faults keeps one malformed output from
// blocking projection of an entire transaction or block.
var (
	jsonInvalid = json.RawMessage(`"invalid"`)
	jsonEmpty   = json.RawMessage(`""`)
)

// mustJSON marshals a projection struct, degrading to the invalid marker on
// the (unreachable for our types) marshal failure.
func mustJSON(v interface{}) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return jsonInvalid
	}
	return b
}
