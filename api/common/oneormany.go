package common

import (
	"bytes"
	"encoding/json"
	"reflect"
	"slices"
)

// OneOrMany is a value that the wire format allows either as a single item or
// as a list of items. It remembers which form it was built from so that it can
// be written back the same way.
//
// The zero value is unset and encodes as null.
type OneOrMany[T any] struct {
	values []T
	many   bool
}

// One returns the scalar form.
func One[T any](v T) OneOrMany[T] {
	return OneOrMany[T]{values: []T{v}}
}

// Many returns the list form, which may be empty.
func Many[T any](vs ...T) OneOrMany[T] {
	values := make([]T, len(vs))
	copy(values, vs)
	return OneOrMany[T]{values: values, many: true}
}

// MapOneOrMany applies fn to every item, keeping the form of o.
func MapOneOrMany[T, U any](o OneOrMany[T], fn func(T) U) OneOrMany[U] {
	out := OneOrMany[U]{many: o.many}
	if o.values != nil {
		out.values = make([]U, len(o.values))
		for i, v := range o.values {
			out.values[i] = fn(v)
		}
	}
	return out
}

// Values returns the items; a scalar yields a one-element slice.
func (o OneOrMany[T]) Values() []T {
	return slices.Clone(o.values)
}

func (o OneOrMany[T]) Len() int {
	return len(o.values)
}

// IsList reports whether o is in the list form.
func (o OneOrMany[T]) IsList() bool {
	return o.many
}

// IsZero reports whether o is unset.
func (o OneOrMany[T]) IsZero() bool {
	return !o.many && len(o.values) == 0
}

// First returns the first item, if any.
func (o OneOrMany[T]) First() (T, bool) {
	if len(o.values) == 0 {
		var zero T
		return zero, false
	}
	return o.values[0], true
}

func (o OneOrMany[T]) Equal(other OneOrMany[T]) bool {
	if o.many != other.many || len(o.values) != len(other.values) {
		return false
	}
	for i := range o.values {
		if !reflect.DeepEqual(o.values[i], other.values[i]) {
			return false
		}
	}
	return true
}

func (o OneOrMany[T]) MarshalJSON() ([]byte, error) {
	switch {
	case o.many:
		if o.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(o.values)
	case len(o.values) == 0:
		return []byte("null"), nil
	default:
		return json.Marshal(o.values[0])
	}
}

func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case IsNull(data):
		*o = OneOrMany[T]{}
	case len(data) > 0 && data[0] == '[':
		var values []T
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*o = Many(values...)
	default:
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*o = One(v)
	}
	return nil
}

// CloneOneOrMany returns a pointer to an independent copy of *p, or nil when p
// is nil.
func CloneOneOrMany[T any](p *OneOrMany[T]) *OneOrMany[T] {
	if p == nil {
		return nil
	}
	out := MapOneOrMany(*p, func(v T) T { return v })
	return &out
}
