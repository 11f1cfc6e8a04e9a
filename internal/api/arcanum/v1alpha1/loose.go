package v1alpha1

import (
	"bytes"
	"encoding/json"
	"math"
)

// LooseInt is an optional integer that accepts any JSON value. Numbers are
// truncated toward zero and limited to the int32 range; strings, booleans,
// objects and null read as absent.
type LooseInt struct {
	Value *int32
}

// Int returns a LooseInt holding n.
func Int(n int32) LooseInt {
	return LooseInt{Value: &n}
}

// UnmarshalJSON implements json.Unmarshaler
func (l *LooseInt) UnmarshalJSON(b []byte) error {
	l.Value = nil

	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	f = math.Trunc(f)
	f = math.Max(math.MinInt32, math.Min(math.MaxInt32, f))
	n := int32(f)
	l.Value = &n
	return nil
}

// MarshalJSON implements json.Marshaler
func (l LooseInt) MarshalJSON() ([]byte, error) {
	if l.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*l.Value)
}
