package model

import (
	"bytes"
	"encoding/json"
)

// Value is an opaque document value copied from a key that was present in the input,
// explicit null included. A nil *Value stands for an absent key and is dropped by omitempty.
type Value struct {
	v interface{}
}

// NewValue wraps a deep copy of v.
func NewValue(v interface{}) *Value {
	return &Value{v: Clone(v)}
}

// Get returns the wrapped value, nil for null or an absent key.
func (v *Value) Get() interface{} {
	if v == nil {
		return nil
	}
	return v.v
}

// MarshalJSON encodes the wrapped value with HTML characters left unescaped.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v.v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func lookupValue(doc map[string]interface{}, key string) *Value {
	raw, ok := doc[key]
	if !ok {
		return nil
	}
	return NewValue(raw)
}
