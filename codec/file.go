package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/stevemurr/kvfile/kv"
)

// readFile loads the raw contents of the store file at path, mapping a
// missing file to ErrNotFound.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading store file %s: %w", path, err)
	}
	return data, nil
}

// writeFile replaces the contents of path with data. The bytes go to a
// temporary file in the same directory first and are renamed over the
// target, so a failed write never truncates an existing store.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	return nil
}

// fromMap builds a store from an unordered mapping. Keys are inserted in
// sorted order so repeated decodes of the same file list identically.
func fromMap(m map[string]string) *kv.Store {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	st := kv.New()
	for _, k := range keys {
		st.Set(k, m[k])
	}
	return st
}

// toMap flattens a store for the map-shaped formats.
func toMap(st *kv.Store) map[string]string {
	m := make(map[string]string, st.Len())
	for _, e := range st.Entries() {
		m[e.Key] = e.Value
	}
	return m
}
