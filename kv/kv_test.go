package kv_test

import (
	"errors"
	"testing"

	"github.com/stevemurr/kvfile/kv"
)

func TestSetAndGet(t *testing.T) {
	s := kv.New()
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", s.Len())
	}

	s.Set("hat", "fedora")
	v, ok := s.Get("hat")
	if !ok {
		t.Fatal("expected hat to exist")
	}
	if v != "fedora" {
		t.Fatalf("expected fedora, got %q", v)
	}

	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected missing key to not exist")
	}
}

func TestSetOverwrites(t *testing.T) {
	s := kv.New()
	s.Set("hat", "fedora")
	s.Set("food", "hotdog")
	s.Set("hat", "bowler")

	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}
	if v, _ := s.Get("hat"); v != "bowler" {
		t.Fatalf("expected bowler, got %q", v)
	}

	// Overwriting must not move the key to the end.
	entries := s.Entries()
	if entries[0].Key != "hat" || entries[1].Key != "food" {
		t.Fatalf("expected order [hat food], got %v", entries)
	}
}

func TestEntriesKeepInsertionOrder(t *testing.T) {
	s := kv.New()
	s.Set("c", "3")
	s.Set("a", "1")
	s.Set("b", "2")

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"c", "a", "b"}
	for i, e := range entries {
		if e.Key != want[i] {
			t.Fatalf("entry %d: expected key %q, got %q", i, want[i], e.Key)
		}
	}
}

func TestDelete(t *testing.T) {
	s := kv.New()
	s.Set("a", "1")
	s.Set("b", "2")

	if err := s.Delete("a"); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}
	if _, ok := s.Get("a"); ok {
		t.Fatal("expected a to be gone after delete")
	}

	entries := s.Entries()
	if len(entries) != 1 || entries[0].Key != "b" {
		t.Fatalf("expected only b to remain, got %v", entries)
	}
}

func TestDeleteMissing(t *testing.T) {
	s := kv.New()
	s.Set("a", "1")

	err := s.Delete("nope")
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if !errors.Is(err, kv.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected store to be untouched, got %d entries", s.Len())
	}
}

func TestEntriesIsSnapshot(t *testing.T) {
	s := kv.New()
	s.Set("a", "1")

	entries := s.Entries()
	s.Set("b", "2")

	if len(entries) != 1 {
		t.Fatalf("expected snapshot to stay at 1 entry, got %d", len(entries))
	}
}
