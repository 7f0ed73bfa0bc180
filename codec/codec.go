// Package codec defines the persistence contract between a store and its
// file, with one implementation per supported format.
package codec

import (
	"errors"

	"github.com/stevemurr/kvfile/kv"
)

var (
	// ErrNotFound is returned by Decode when the store file does not exist.
	ErrNotFound = errors.New("store file not found")

	// ErrMalformed is returned by Decode when the file exists but its
	// contents are not valid for the codec's format.
	ErrMalformed = errors.New("malformed store file")

	// ErrSaveFailed is returned by Encode when the file could not be
	// written or replaced.
	ErrSaveFailed = errors.New("save failed")
)

// Codec converts between an in-memory store and its on-disk form.
// Implementations hold no state; every call performs its own I/O.
type Codec interface {
	// Decode reads the file at path and reconstructs the store it holds.
	Decode(path string) (*kv.Store, error)

	// Encode serializes the store and writes it to path, replacing any
	// previous contents. A failed Encode leaves the previous contents
	// intact.
	Encode(st *kv.Store, path string) error

	// String returns the canonical format name.
	String() string
}
