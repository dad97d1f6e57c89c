// Package property provides the set-once store of resolved generation values.
package property

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// ErrConflict is returned when a key is put again with a different value.
var ErrConflict = errors.New("property already set to a different value")

// Repository maps keys to resolved values (strings or paths).
// A key, once set, keeps its value for the rest of the run.
type Repository struct {
	values map[string]any
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{values: make(map[string]any)}
}

// Put stores value under key. Putting an identical value again is a no-op;
// a different value returns ErrConflict and leaves the stored value untouched.
func (r *Repository) Put(key string, value any) error {
	if old, ok := r.values[key]; ok {
		if reflect.DeepEqual(old, value) {
			return nil
		}
		return fmt.Errorf("property %q: %w (have %v, got %v)", key, ErrConflict, old, value)
	}
	r.values[key] = value
	return nil
}

// Get returns the value stored under key and whether it was present.
func (r *Repository) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// GetString returns the value under key formatted as a string.
func (r *Repository) GetString(key string) (string, bool) {
	v, ok := r.values[key]
	if !ok {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Contains reports whether key is present.
func (r *Repository) Contains(key string) bool {
	_, ok := r.values[key]
	return ok
}

// ContainsNot reports whether key is absent.
func (r *Repository) ContainsNot(key string) bool {
	return !r.Contains(key)
}

// Keys returns the stored keys, sorted.
func (r *Repository) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
