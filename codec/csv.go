package codec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/stevemurr/kvfile/kv"
)

// csvCodec persists the store as a two-column CSV table. The header row is
// exactly "key,value" and data rows keep the store's insertion order, so a
// CSV store round-trips in file order. Keys and values holding a CRLF line
// ending cannot round-trip and are rejected on Encode.
type csvCodec struct{}

func (csvCodec) Decode(path string) (*kv.Store, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: missing %q header", ErrMalformed, path, "key,value")
	}
	if records[0][0] != "key" || records[0][1] != "value" {
		return nil, fmt.Errorf("%w: %s: unexpected header %q", ErrMalformed, path, strings.Join(records[0], ","))
	}

	st := kv.New()
	for _, rec := range records[1:] {
		if _, ok := st.Get(rec[0]); ok {
			return nil, fmt.Errorf("%w: %s: duplicate key %q", ErrMalformed, path, rec[0])
		}
		st.Set(rec[0], rec[1])
	}
	return st, nil
}

func (csvCodec) Encode(st *kv.Store, path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"key", "value"}); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	for _, e := range st.Entries() {
		// The csv reader folds "\r\n" to "\n" even inside quoted fields,
		// so such entries would come back changed.
		if strings.Contains(e.Key, "\r\n") || strings.Contains(e.Value, "\r\n") {
			return fmt.Errorf("%w: %s: CSV cannot hold CRLF line endings (key %q)", ErrSaveFailed, path, e.Key)
		}
		if err := w.Write([]string{e.Key, e.Value}); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	return writeFile(path, buf.Bytes())
}

func (csvCodec) String() string { return CSV }
