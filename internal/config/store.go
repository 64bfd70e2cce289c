package config

import (
	"fmt"
	"log"

	"busboard/internal/storage"
)

// OpenStore builds the persistence surface selected by STORE_DRIVER.
// The repository layer handles runtime failures of the returned surface;
// this only fails when the driver itself cannot be brought up.
func OpenStore(env Env) (storage.KV, error) {
	switch env.StoreDriver {
	case "mysql":
		kv, err := storage.OpenMySQL(env.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("mysql store: %w", err)
		}
		log.Println("store driver: mysql")
		return kv, nil
	case "badger":
		kv, err := storage.OpenBadger(env.BadgerPath)
		if err != nil {
			return nil, fmt.Errorf("badger store: %w", err)
		}
		log.Printf("store driver: badger path=%s", env.BadgerPath)
		return kv, nil
	case "memory":
		log.Println("store driver: memory (data will not survive restart)")
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", env.StoreDriver)
	}
}
