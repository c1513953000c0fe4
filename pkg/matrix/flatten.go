package matrix

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Flattenable is implemented by every entity in the content model.
// Flatten projects the entity into a JSON-representable value: an *Object,
// a list, or a primitive. The projection is pure and idempotent.
type Flattenable interface {
	Flatten() any
}

// ToJSON renders the flattened form of f as canonical JSON text.
//
// Flattening itself cannot fail on a valid model; an encoding error here
// means the model invariants were broken and is returned as-is rather than
// translated.
func ToJSON(f Flattenable) (string, error) {
	data, err := json.Marshal(f.Flatten())
	if err != nil {
		return "", fmt.Errorf("failed to encode flattened value: %w", err)
	}
	return string(data), nil
}

// Save writes the JSON text of f to path, overwriting any existing file.
// The file handle is released on every exit path, including write failure.
func Save(f Flattenable, path string) error {
	text, err := ToJSON(f)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := out.WriteString(text); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return out.Close()
}

// Object is a JSON object that marshals its keys in insertion order.
//
// encoding/json sorts map keys alphabetically, which would scramble the
// documented field order of the wire format. Keeping keys ordered makes
// serialization reproducible: the same model always yields the same text.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores value under key, appending the key on first use.
// Returns the object for chaining.
func (o *Object) Set(key string, value any) *Object {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Merge copies every key of other into o, preserving other's key order.
func (o *Object) Merge(other *Object) *Object {
	for _, key := range other.keys {
		o.Set(key, other.values[key])
	}
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON implements json.Marshaler, emitting keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valueJSON, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", key, err)
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
