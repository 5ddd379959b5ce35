package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric body field that accepts a JSON number, a numeric
// string or null. Values that cannot be read as a number are kept as
// Invalid instead of failing the whole payload.
type Number struct {
	Value   float64
	Set     bool
	Invalid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	n.Set = true

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			n.Invalid = true
			return nil
		}
		n.Value = v
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			n.Invalid = true
			return nil
		}
		n.Value = v
	default:
		n.Invalid = true
	}
	return nil
}

// Ptr returns nil for an absent value and NaN for an unreadable one.
func (n Number) Ptr() *float64 {
	if !n.Set {
		return nil
	}
	v := n.Value
	if n.Invalid {
		v = math.NaN()
	}
	return &v
}
