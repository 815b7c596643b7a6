package common

import (
	"encoding/json"
	"iter"
	"reflect"

	"github.com/mohae/deepcopy"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Property is a single free-form member of an object.
type Property struct {
	Key   string
	Value any
}

// Properties holds the members of an object that its schema does not declare,
// in document order. Values are decoded JSON values: string, json.Number, bool,
// nil, []any or map[string]any.
//
// The zero value is empty and ready to use. Copies share storage; use Clone for
// an independent set.
type Properties struct {
	m *orderedmap.OrderedMap[string, any]
}

func NewProperties(props ...Property) Properties {
	p := Properties{}
	for _, prop := range props {
		p.Set(prop.Key, prop.Value)
	}
	return p
}

func (p Properties) Len() int {
	if p.m == nil {
		return 0
	}
	return p.m.Len()
}

func (p Properties) IsEmpty() bool {
	return p.Len() == 0
}

func (p Properties) Get(key string) (any, bool) {
	if p.m == nil {
		return nil, false
	}
	return p.m.Get(key)
}

// Set adds or replaces a member. A replaced member keeps its position.
func (p *Properties) Set(key string, value any) {
	if p.m == nil {
		p.m = orderedmap.New[string, any]()
	}
	p.m.Set(key, value)
}

func (p *Properties) Delete(key string) {
	if p.m == nil {
		return
	}
	p.m.Delete(key)
}

func (p Properties) Keys() []string {
	keys := make([]string, 0, p.Len())
	for k := range p.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over the members in document order.
func (p Properties) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if p.m == nil {
			return
		}
		for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Without returns a deep copy of p minus the named members.
func (p Properties) Without(keys ...string) Properties {
	out := Properties{}
	for k, v := range p.All() {
		if containsKey(keys, k) {
			continue
		}
		out.Set(k, deepcopy.Copy(v))
	}
	return out
}

// Clone returns a deep copy of p.
func (p Properties) Clone() Properties {
	return p.Without()
}

// Equal reports whether both sets hold the same members in the same order.
func (p Properties) Equal(other Properties) bool {
	if p.Len() != other.Len() {
		return false
	}
	if p.Len() == 0 {
		return true
	}
	a, b := p.m.Oldest(), other.m.Oldest()
	for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || !reflect.DeepEqual(a.Value, b.Value) {
			return false
		}
	}
	return true
}

func (p Properties) MarshalJSON() ([]byte, error) {
	return NewObjectEncoder().Merge(p).MarshalJSON()
}

func (p *Properties) UnmarshalJSON(data []byte) error {
	fields, err := DecodeObject(data)
	if err != nil {
		return err
	}
	rest, err := fields.Rest()
	if err != nil {
		return err
	}
	*p = rest
	return nil
}

var _ json.Marshaler = Properties{}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
