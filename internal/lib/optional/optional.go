// Package optional provides a value type that remembers whether a JSON key
// was present in the request body at all.
//
// A plain pointer cannot tell "key not sent" apart from "key sent as null",
// and a plain value cannot tell "not sent" apart from "sent as 0/false/''".
// Value[T] tracks both signals so PATCH/POST handlers can decide exactly which
// columns the client touched.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds an optional T plus the presence information gathered while
// decoding JSON.
//
// The zero value is "not provided".
type Value[T any] struct {
	set  bool
	null bool
	val  T
}

// Some returns a provided, non-null value.
func Some[T any](v T) Value[T] {
	return Value[T]{set: true, val: v}
}

// Null returns a value that was provided as an explicit JSON null.
func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// UnmarshalJSON is only invoked by encoding/json when the key exists in the
// object, which is what makes presence detection work.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		v.null = true
		v.val = zero
		return nil
	}

	v.null = false
	return json.Unmarshal(data, &v.val)
}

// MarshalJSON writes null for both "not provided" and "provided as null".
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set || v.null {
		return []byte("null"), nil
	}
	return json.Marshal(v.val)
}

// IsSet reports whether the key was present, including as null.
func (v Value[T]) IsSet() bool { return v.set }

// IsNull reports whether the key was present with a null value.
func (v Value[T]) IsNull() bool { return v.set && v.null }

// Get returns the value and whether it carries a non-null value.
func (v Value[T]) Get() (T, bool) {
	return v.val, v.set && !v.null
}

// Any returns the value as a database argument: nil for null, the value
// otherwise. Callers should check IsSet first.
func (v Value[T]) Any() any {
	if v.null {
		return nil
	}
	return v.val
}
