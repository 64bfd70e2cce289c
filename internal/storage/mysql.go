package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore keeps blobs in a single key/payload table. One row per key;
// writes replace the payload in place.
type MySQLStore struct {
	DB *sql.DB
}

// OpenMySQL connects with the given DSN and makes sure the blob table exists.
func OpenMySQL(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	s := &MySQLStore{DB: db}
	if err := s.ensureTable(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *MySQLStore) ensureTable() error {
	_, err := s.DB.Exec(`CREATE TABLE IF NOT EXISTS store_blobs (
		store_key VARCHAR(64) NOT NULL PRIMARY KEY,
		payload LONGTEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("ensure store_blobs table: %w", err)
	}
	return nil
}

func (s *MySQLStore) Get(key string) ([]byte, error) {
	var payload []byte
	err := s.DB.QueryRow(`SELECT payload FROM store_blobs WHERE store_key=?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *MySQLStore) Put(key string, value []byte) error {
	_, err := s.DB.Exec(
		`INSERT INTO store_blobs (store_key, payload) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE payload=VALUES(payload)`,
		key, value,
	)
	return err
}

func (s *MySQLStore) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
