package models

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state optional value: unset, explicitly null, or set.
// The zero value is unset, which is what a JSON decoder leaves behind
// when the key is missing from the payload.
type Field[T any] struct {
	present bool
	valid   bool
	value   T
}

// Some returns a Field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{present: true, valid: true, value: v}
}

// Null returns a Field that was supplied explicitly without a value.
func Null[T any]() Field[T] {
	return Field[T]{present: true}
}

func (f Field[T]) IsSet() bool { return f.present }

func (f Field[T]) IsNull() bool { return f.present && !f.valid }

// Get returns the held value and whether one is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.valid
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.valid = false
		f.value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}
	f.valid = true
	return nil
}
