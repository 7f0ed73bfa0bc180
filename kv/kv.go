// Package kv holds the in-memory key/value mapping that the codecs persist.
package kv

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned when an operation names a key that is not in
// the store.
var ErrKeyNotFound = errors.New("key not found")

// Entry is a single key/value pair.
type Entry struct {
	Key   string
	Value string
}

// Store maps string keys to string values. It remembers insertion order so
// formats where row order carries meaning (CSV, SQLite) can write entries
// back in the order they arrived. The zero value is not usable; call New.
type Store struct {
	order  []string
	values map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.values)
}

// Get returns the value for key and whether the key exists.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set inserts or replaces the entry for key. A new key is appended to the
// store order; an existing key keeps its position and takes the new value.
func (s *Store) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.order = append(s.order, key)
	}
	s.values[key] = value
}

// Delete removes the entry for key. It returns an error wrapping
// ErrKeyNotFound if the key is absent.
func (s *Store) Delete(key string) error {
	if _, ok := s.values[key]; !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	delete(s.values, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Entries returns a snapshot of all entries in insertion order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.order))
	for _, k := range s.order {
		entries = append(entries, Entry{Key: k, Value: s.values[k]})
	}
	return entries
}
