package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Canonical format names accepted by New.
const (
	YAML   = "yaml"
	JSON   = "json"
	TOML   = "toml"
	CSV    = "csv"
	SQLite = "sqlite"
)

// Formats returns the canonical format names in display order.
func Formats() []string {
	return []string{YAML, JSON, TOML, CSV, SQLite}
}

// New creates a Codec for a format name. Extension-style spellings
// ("yml", "db", "sqlite3") are accepted as aliases.
func New(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case YAML, "yml":
		return yamlCodec{}, nil
	case JSON:
		return jsonCodec{}, nil
	case TOML:
		return tomlCodec{}, nil
	case CSV:
		return csvCodec{}, nil
	case SQLite, "sqlite3", "db":
		return sqliteCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
}

// Detect picks a codec from the file extension of path.
func Detect(path string) (Codec, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("cannot detect format of %q: no file extension (supported: %s)", path, strings.Join(Formats(), ", "))
	}
	c, err := New(ext)
	if err != nil {
		return nil, fmt.Errorf("cannot detect format of %q: unsupported extension %q (supported: %s)", path, ext, strings.Join(Formats(), ", "))
	}
	return c, nil
}
