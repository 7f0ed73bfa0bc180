package codec

import (
	"encoding/json"
	"fmt"

	"github.com/stevemurr/kvfile/kv"
)

// jsonCodec persists the store as a single JSON object of strings.
type jsonCodec struct{}

func (jsonCodec) Decode(path string) (*kv.Store, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if m == nil {
		// A bare null unmarshals without error but holds no object.
		return nil, fmt.Errorf("%w: %s: missing top-level mapping", ErrMalformed, path)
	}
	return fromMap(m), nil
}

func (jsonCodec) Encode(st *kv.Store, path string) error {
	data, err := json.MarshalIndent(toMap(st), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	return writeFile(path, data)
}

func (jsonCodec) String() string { return JSON }
