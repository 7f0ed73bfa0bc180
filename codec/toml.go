package codec

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/stevemurr/kvfile/kv"
)

// tomlCodec persists the store as a single top-level TOML table of strings.
type tomlCodec struct{}

func (tomlCodec) Decode(path string) (*kv.Store, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return fromMap(m), nil
}

func (tomlCodec) Encode(st *kv.Store, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(toMap(st)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	return writeFile(path, buf.Bytes())
}

func (tomlCodec) String() string { return TOML }
