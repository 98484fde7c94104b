package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"sleuthbot/internal/credential"
)

// SQLiteStore keeps configuration in a single-table SQLite database.
type SQLiteStore struct {
	db    *sql.DB
	creds *credential.Manager
}

// NewSQLiteStore opens (or creates) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	creds, err := credential.NewManager()
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLiteStore{db: db, creds: creds}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `CREATE TABLE IF NOT EXISTS configuration (
		key TEXT PRIMARY KEY,
		value TEXT
	);`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// SetConfig stores a plaintext configuration value.
func (s *SQLiteStore) SetConfig(key, value string) error {
	query := `INSERT INTO configuration (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err := s.db.Exec(query, key, value)
	return err
}

// GetConfig returns the value for key, or "" when unset.
func (s *SQLiteStore) GetConfig(key string) (string, error) {
	row := s.db.QueryRow(`SELECT value FROM configuration WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// ListConfig returns every stored key/value pair. Encrypted values are
// returned as stored, not decrypted.
func (s *SQLiteStore) ListConfig() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM configuration ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

// SetSecret encrypts value before storing it under key.
func (s *SQLiteStore) SetSecret(key, value string) error {
	stored, err := s.creds.Encrypt(value)
	if err != nil {
		return err
	}
	return s.SetConfig(key, stored)
}

// GetSecret returns the decrypted value for key, or "" when unset.
func (s *SQLiteStore) GetSecret(key string) (string, error) {
	stored, err := s.GetConfig(key)
	if err != nil {
		return "", err
	}
	return s.creds.Decrypt(stored)
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
