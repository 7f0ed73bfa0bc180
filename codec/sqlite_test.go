package codec_test

import (
	"bytes"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stevemurr/kvfile/codec"
	"github.com/stevemurr/kvfile/kv"
)

func TestSQLiteDecodeGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	if err := os.WriteFile(path, []byte("this is not a database"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := codec.New(codec.SQLite)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Decode(path); !errors.Is(err, codec.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestSQLiteDecodeMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	// A valid database that was never initialized as a store.
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("CREATE TABLE unrelated (x TEXT)"); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	c, err := codec.New(codec.SQLite)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Decode(path); !errors.Is(err, codec.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestSQLiteEncodeOntoGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	garbage := []byte("this is not a database")
	if err := os.WriteFile(path, garbage, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := codec.New(codec.SQLite)
	if err != nil {
		t.Fatal(err)
	}
	st := kv.New()
	st.Set("a", "1")
	if err := c.Encode(st, path); !errors.Is(err, codec.ErrSaveFailed) {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(garbage, after) {
		t.Fatal("file contents changed after failed encode")
	}
}

func TestSQLiteOrderSurvivesRewrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	c, err := codec.New(codec.SQLite)
	if err != nil {
		t.Fatal(err)
	}

	st := kv.New()
	st.Set("first", "1")
	st.Set("second", "2")
	st.Set("third", "3")
	if err := c.Encode(st, path); err != nil {
		t.Fatal(err)
	}

	// Rewrite the file a few times the way repeated CLI calls would.
	for i := 0; i < 3; i++ {
		got, err := c.Decode(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := c.Encode(got, path); err != nil {
			t.Fatal(err)
		}
	}

	got, err := c.Decode(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"first", "second", "third"}
	for i, e := range got.Entries() {
		if e.Key != want[i] {
			t.Fatalf("entry %d: expected key %q, got %q", i, want[i], e.Key)
		}
	}
}
