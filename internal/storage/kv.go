package storage

import "errors"

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KV is the persistence surface for the booking store blob. The whole store
// lives under one fixed key; implementations only need whole-value reads and
// whole-value replacing writes.
//
// Implementations: MySQL (store_blobs table), Badger (embedded), and an
// in-memory map used for tests and as the automatic fallback when the
// configured surface is unusable.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}
