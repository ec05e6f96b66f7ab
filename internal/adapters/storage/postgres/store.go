// Package postgres は PostgreSQL の kv_entries テーブルを永続化媒体とする KeyValueStore です。
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-employee-directory/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-employee-directory/internal/platform/db/postgres"
)

// TransactionManager は読み書きをトランザクション内で実行するための抽象です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

// Store はキーごとに JSON テキストを 1 行で保存します。
type Store struct {
	pool pgdb.Queryer
	tx   TransactionManager
}

var _ employee.KeyValueStore = (*Store)(nil)

// NewStore は Store を生成します。tx が nil の場合はトランザクションを張りません。
func NewStore(pool pgdb.Queryer, tx TransactionManager) *Store {
	return &Store{pool: pool, tx: tx}
}

// Get はキーに対応する値を返します。
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	read := func(txCtx context.Context) error {
		exec := pgdb.QueryerFromContext(txCtx, s.pool)
		return exec.QueryRow(txCtx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	}

	var err error
	if s.tx == nil {
		err = read(ctx)
	} else {
		err = s.tx.WithinReadOnly(ctx, read)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, employee.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: select %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set は値を上書き保存します。
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	upsert := func(txCtx context.Context) error {
		exec := pgdb.QueryerFromContext(txCtx, s.pool)
		if _, err := exec.Exec(txCtx, `
            INSERT INTO kv_entries (key, value, updated_at)
            VALUES ($1, $2, now())
            ON CONFLICT (key) DO UPDATE
               SET value = EXCLUDED.value,
                   updated_at = EXCLUDED.updated_at
        `, key, string(value)); err != nil {
			return fmt.Errorf("postgres: upsert %s: %w", key, err)
		}
		return nil
	}

	if s.tx == nil {
		return upsert(ctx)
	}
	return s.tx.WithinReadWrite(ctx, upsert)
}
