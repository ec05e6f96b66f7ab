// Package sqlite は SQLite の 1 テーブルにキーごとの値を保存する KeyValueStore です。
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ogurasousui/codex-employee-directory/internal/core/employee"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Store は kv_entries テーブルを利用します。
type Store struct {
	db   *sql.DB
	path string
}

var _ employee.KeyValueStore = (*Store)(nil)

// Open はファイルを開き、必要ならテーブルを作成します。
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("sqlite: create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv_entries (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create kv_entries: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Get はキーに対応する値を返します。
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, employee.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: select %s: %w", key, err)
	}
	return value, nil
}

// Set は値を上書き保存します。
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, `INSERT INTO kv_entries(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, key, value); err != nil {
		return fmt.Errorf("sqlite: upsert %s: %w", key, err)
	}
	return nil
}

// Path はデータベースファイルのパスを返します。
func (s *Store) Path() string { return s.path }

// Close はデータベースを閉じます。
func (s *Store) Close() error {
	return s.db.Close()
}
