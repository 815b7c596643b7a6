package common

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Fields is a decoded JSON object whose members are consumed one at a time by
// an UnmarshalJSON implementation. Whatever is left over becomes the object's
// additional properties.
type Fields struct {
	raw *orderedmap.OrderedMap[string, json.RawMessage]
}

// DecodeObject splits a JSON object into its members. A JSON null yields an
// object without members.
func DecodeObject(data []byte) (*Fields, error) {
	raw := orderedmap.New[string, json.RawMessage]()
	if IsNull(data) {
		return &Fields{raw: raw}, nil
	}
	if err := raw.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("decoding object: %w", err)
	}
	return &Fields{raw: raw}, nil
}

// Take decodes the named member into dst and removes it from f. An absent
// member leaves dst untouched; a null member decodes as usual, so pointer
// destinations stay nil.
func (f *Fields) Take(key string, dst any) error {
	raw, ok := f.raw.Get(key)
	if !ok {
		return nil
	}
	f.raw.Delete(key)
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decoding %q: %w", key, err)
	}
	return nil
}

// Rest returns the members not consumed by Take, in document order.
func (f *Fields) Rest() (Properties, error) {
	props := Properties{}
	for pair := f.raw.Oldest(); pair != nil; pair = pair.Next() {
		v, err := decodeValue(pair.Value)
		if err != nil {
			return Properties{}, fmt.Errorf("decoding %q: %w", pair.Key, err)
		}
		props.Set(pair.Key, v)
	}
	return props, nil
}

func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// ObjectEncoder writes a JSON object member by member, keeping insertion order.
type ObjectEncoder struct {
	m *orderedmap.OrderedMap[string, any]
}

func NewObjectEncoder() *ObjectEncoder {
	return &ObjectEncoder{m: orderedmap.New[string, any]()}
}

func (e *ObjectEncoder) Set(key string, value any) *ObjectEncoder {
	e.m.Set(key, value)
	return e
}

// Merge appends additional properties. Members already written take precedence
// over same-named properties.
func (e *ObjectEncoder) Merge(props Properties) *ObjectEncoder {
	for k, v := range props.All() {
		if _, exists := e.m.Get(k); exists {
			continue
		}
		e.m.Set(k, v)
	}
	return e
}

func (e *ObjectEncoder) MarshalJSON() ([]byte, error) {
	return e.m.MarshalJSON()
}

// IsNull reports whether data is the JSON literal null.
func IsNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// SetOptional writes the member only when v is non-nil.
func SetOptional[T any](e *ObjectEncoder, key string, v *T) *ObjectEncoder {
	if v != nil {
		e.Set(key, *v)
	}
	return e
}

// TakeMap decodes the named object member into a new ordered map, keeping the
// member order of the document. An absent or null member yields nil.
func TakeMap[V any](f *Fields, key string) (*orderedmap.OrderedMap[string, V], error) {
	raw, ok := f.raw.Get(key)
	if !ok {
		return nil, nil
	}
	f.raw.Delete(key)
	if IsNull(raw) {
		return nil, nil
	}
	m := orderedmap.New[string, V]()
	if err := m.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", key, err)
	}
	return m, nil
}

// MapOrEmpty returns m, or an empty map when m is nil.
func MapOrEmpty[V any](m *orderedmap.OrderedMap[string, V]) *orderedmap.OrderedMap[string, V] {
	if m == nil {
		return orderedmap.New[string, V]()
	}
	return m
}
