package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Number accepts any JSON value for fields that are usually numeric but that
// some listings publish as text ("Consultar", "120 m2") or as a fraction.
// The value is re-encoded exactly as it arrived.
type Number struct {
	raw json.RawMessage
}

// NumberOf builds a Number from a Go value, mostly for fixtures.
func NumberOf(v any) Number {
	b, err := json.Marshal(v)
	if err != nil {
		return Number{}
	}
	return Number{raw: b}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	n.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if len(n.raw) == 0 {
		return []byte("null"), nil
	}
	return n.raw, nil
}

// IsZero reports whether the feed left the value out or null.
func (n Number) IsZero() bool {
	return len(n.raw) == 0 || bytes.Equal(n.raw, []byte("null"))
}

// String returns the textual form: strings unquoted, numbers as published.
func (n Number) String() string {
	if n.IsZero() {
		return ""
	}
	if n.raw[0] == '"' {
		var s string
		if err := json.Unmarshal(n.raw, &s); err == nil {
			return s
		}
	}
	return string(n.raw)
}

// Float64 parses the value as a number, also when it was sent quoted.
func (n Number) Float64() (float64, bool) {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
