package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/stevemurr/kvfile/kv"
)

// yamlCodec persists the store as a single YAML mapping of strings.
type yamlCodec struct{}

func (yamlCodec) Decode(path string) (*kv.Store, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if m == nil {
		// A null or empty document unmarshals without error but holds no
		// mapping. An empty store is "{}".
		return nil, fmt.Errorf("%w: %s: missing top-level mapping", ErrMalformed, path)
	}
	return fromMap(m), nil
}

func (yamlCodec) Encode(st *kv.Store, path string) error {
	data, err := yaml.Marshal(toMap(st))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	return writeFile(path, data)
}

func (yamlCodec) String() string { return YAML }
