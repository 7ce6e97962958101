package roman

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes n as a JSON string holding its numeral.
func (n Numeral) MarshalJSON() ([]byte, error) {
	s, err := Format(uint16(n))
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON accepts only a JSON string holding a canonical numeral.
// Numbers, null and every other JSON type are rejected.
func (n *Numeral) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return newErr(ErrRepresentation, fmt.Sprintf("expected JSON string, got %s", jsonKind(raw)))
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return newErr(ErrRepresentation, "malformed JSON string")
	}
	v, err := ParseNumeral(s)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func jsonKind(raw []byte) string {
	if len(raw) == 0 {
		return "empty input"
	}
	switch c := raw[0]; {
	case c == 'n':
		return "null"
	case c == 't' || c == 'f':
		return "boolean"
	case c == '[':
		return "array"
	case c == '{':
		return "object"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	default:
		return "invalid JSON"
	}
}
