// Package otio builds and serializes OpenTimelineIO interchange
// documents. The consuming editor requires time values to look like
// explicit decimals and object keys to keep their insertion order, so
// the package carries its own value tree and writer instead of
// encoding/json.
package otio

// Decimal marks a number that must serialize with at least one
// fractional digit, never as a bare integer.
type Decimal float64

// Object is a JSON object that remembers key insertion order.
type Object struct {
	keys   []string
	values map[string]any
}

func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// NewSchemaObject returns an object whose first key is the OTIO_SCHEMA
// tag, as the interchange format expects.
func NewSchemaObject(schema string) *Object {
	return NewObject().Set("OTIO_SCHEMA", schema)
}

// Set adds or replaces a key and returns the object for chaining.
// A replaced key keeps its original position.
func (o *Object) Set(key string, v any) *Object {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}
