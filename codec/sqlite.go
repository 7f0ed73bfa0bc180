package codec

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/stevemurr/kvfile/kv"
)

// sqliteCodec persists the store in a single-table SQLite database.
//
// Schema:
//
//	kvstore(id INTEGER PRIMARY KEY AUTOINCREMENT, key TEXT UNIQUE, value TEXT)
//
// Rows are read back ordered by id, so insertion order survives
// round-trips the same way it does for CSV.
type sqliteCodec struct{}

func (sqliteCodec) Decode(path string) (*kv.Store, error) {
	// Opening a missing database would create it, so check first.
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading store file %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT key, value FROM kvstore ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	defer rows.Close()

	st := kv.New()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
		}
		if _, ok := st.Get(key); ok {
			return nil, fmt.Errorf("%w: %s: duplicate key %q", ErrMalformed, path, key)
		}
		st.Set(key, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return st, nil
}

func (sqliteCodec) Encode(st *kv.Store, path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	defer db.Close()

	// One transaction for the whole rewrite. If anything fails the old
	// rows stay in place.
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`CREATE TABLE IF NOT EXISTS kvstore (
		id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
		key TEXT UNIQUE NOT NULL,
		value TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	if _, err := tx.Exec("DELETE FROM kvstore"); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}

	stmt, err := tx.Prepare("INSERT INTO kvstore (key, value) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	defer stmt.Close()
	for _, e := range st.Entries() {
		if _, err := stmt.Exec(e.Key, e.Value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
	}
	return nil
}

func (sqliteCodec) String() string { return SQLite }
