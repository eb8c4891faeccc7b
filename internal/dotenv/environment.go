package dotenv

import "sort"

// Environment is an insertion-ordered mapping of variable names to string
// values. The position of a key is fixed by its first assignment; assigning
// an existing key replaces the value in place.
type Environment struct {
	keys   []string
	values map[string]string
}

// NewEnvironment creates an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]string)}
}

// FromMap creates an Environment from a plain map. Keys are inserted in
// lexicographic order so the result is deterministic.
func FromMap(source map[string]string) *Environment {
	keys := make([]string, 0, len(source))
	for key := range source {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	env := NewEnvironment()
	for _, key := range keys {
		env.Set(key, source[key])
	}
	return env
}

// Set assigns value to key, overwriting any prior value. A key keeps the
// position of its first assignment.
func (e *Environment) Set(key, value string) {
	if _, exists := e.values[key]; !exists {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// Get returns the value for key, or the empty string if key is absent.
func (e *Environment) Get(key string) string {
	return e.values[key]
}

// Lookup returns the value for key and whether the key is present, which
// distinguishes an absent key from one explicitly set to the empty string.
func (e *Environment) Lookup(key string) (string, bool) {
	value, ok := e.values[key]
	return value, ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (e *Environment) Keys() []string {
	keys := make([]string, len(e.keys))
	copy(keys, e.keys)
	return keys
}

// Len returns the number of keys.
func (e *Environment) Len() int {
	return len(e.keys)
}

// Map returns the contents as a plain map. The returned map is a copy.
func (e *Environment) Map() map[string]string {
	result := make(map[string]string, len(e.values))
	for key, value := range e.values {
		result[key] = value
	}
	return result
}

// TypedEnvironment is the insertion-ordered result of validating an
// Environment against a Schema: declared variables carry their converted
// typed values, undeclared keys carry their original strings.
type TypedEnvironment struct {
	keys   []string
	values map[string]any
}

// NewTypedEnvironment creates an empty TypedEnvironment.
func NewTypedEnvironment() *TypedEnvironment {
	return &TypedEnvironment{values: make(map[string]any)}
}

// Set assigns value to key, overwriting any prior value.
func (e *TypedEnvironment) Set(key string, value any) {
	if _, exists := e.values[key]; !exists {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// Get returns the value for key, or nil if key is absent.
func (e *TypedEnvironment) Get(key string) any {
	return e.values[key]
}

// Lookup returns the value for key and whether the key is present.
func (e *TypedEnvironment) Lookup(key string) (any, bool) {
	value, ok := e.values[key]
	return value, ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (e *TypedEnvironment) Keys() []string {
	keys := make([]string, len(e.keys))
	copy(keys, e.keys)
	return keys
}

// Len returns the number of keys.
func (e *TypedEnvironment) Len() int {
	return len(e.keys)
}

// Map returns the contents as a plain map. The returned map is a copy.
func (e *TypedEnvironment) Map() map[string]any {
	result := make(map[string]any, len(e.values))
	for key, value := range e.values {
		result[key] = value
	}
	return result
}
