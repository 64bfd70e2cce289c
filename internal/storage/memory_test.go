package storage

import (
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Get("k"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := store.Put("k", []byte("v1")); err != nil {
		t.Fatalf("put error: %v", err)
	}
	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if string(got) != "v1" {
		t.Fatalf("got %q, want v1", got)
	}

	// The stored value is a copy; mutating the returned slice must not
	// leak back into the store.
	got[0] = 'X'
	again, _ := store.Get("k")
	if string(again) != "v1" {
		t.Fatalf("stored value aliased caller slice: %q", again)
	}

	if err := store.Put("k", []byte("v2")); err != nil {
		t.Fatalf("overwrite error: %v", err)
	}
	if v, _ := store.Get("k"); string(v) != "v2" {
		t.Fatalf("overwrite lost: %q", v)
	}
}
