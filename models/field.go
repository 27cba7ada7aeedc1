package models

import (
	"bytes"
	"encoding/json"
)

// Field holds a record value exactly as the upstream produced it.
// Generated IPO data is unstructured, so any optional attribute may arrive as a
// string, a number, an object or null. Field keeps the raw JSON and leaves the
// interpretation to the sanitizer.
type Field struct {
	raw json.RawMessage
}

// NewField encodes v into a Field. Values that cannot be encoded produce an absent Field.
func NewField(v interface{}) Field {
	data, err := json.Marshal(v)
	if err != nil {
		return Field{}
	}
	return Field{raw: data}
}

// Text is a shorthand for a string-valued Field
func Text(s string) Field {
	return NewField(s)
}

// Number is a shorthand for a numeric Field
func Number(n float64) Field {
	return NewField(n)
}

// FieldFromRaw wraps already-encoded JSON. The bytes are compacted so that
// equal values always compare equal after a round trip.
func FieldFromRaw(raw json.RawMessage) Field {
	var f Field
	_ = f.UnmarshalJSON(raw)
	return f
}

// IsZero reports whether the field was absent upstream
func (f Field) IsZero() bool {
	return len(f.raw) == 0
}

// IsNull reports whether the field is absent or an explicit JSON null
func (f Field) IsNull() bool {
	return f.IsZero() || bytes.Equal(f.raw, []byte("null"))
}

// Raw returns the compact JSON encoding of the value
func (f Field) Raw() json.RawMessage {
	return f.raw
}

// Value decodes the field into plain Go values. Numbers are returned as json.Number
// so their original spelling survives.
func (f Field) Value() interface{} {
	if f.IsNull() {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(f.raw))
	decoder.UseNumber()
	var v interface{}
	if err := decoder.Decode(&v); err != nil {
		return nil
	}
	return v
}

// Equal compares the encoded values
func (f Field) Equal(other Field) bool {
	return bytes.Equal(f.raw, other.raw)
}

// MarshalJSON implements json.Marshaler
func (f Field) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return f.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (f *Field) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		f.raw = nil
		return nil
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, trimmed); err != nil {
		return err
	}
	f.raw = json.RawMessage(compacted.Bytes())
	return nil
}
