// Package storage は設定に応じた KeyValueStore を構築します。
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ogurasousui/codex-employee-directory/internal/adapters/storage/badger"
	"github.com/ogurasousui/codex-employee-directory/internal/adapters/storage/memory"
	"github.com/ogurasousui/codex-employee-directory/internal/adapters/storage/postgres"
	"github.com/ogurasousui/codex-employee-directory/internal/adapters/storage/sqlite"
	"github.com/ogurasousui/codex-employee-directory/internal/core/employee"
	"github.com/ogurasousui/codex-employee-directory/internal/platform/config"
	pg "github.com/ogurasousui/codex-employee-directory/internal/platform/db/postgres"
)

// Backend は KeyValueStore と、その後始末をまとめたものです。
type Backend struct {
	employee.KeyValueStore
	io.Closer
	Driver string
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open は cfg.Driver に応じたバックエンドを開きます。
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		s := memory.NewStore()
		return &Backend{KeyValueStore: s, Closer: s, Driver: cfg.Driver}, nil
	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &Backend{KeyValueStore: s, Closer: s, Driver: cfg.Driver}, nil
	case config.DriverBadger:
		s, err := badger.Open(badger.Config{
			Path:       cfg.Badger.Path,
			InMemory:   cfg.Badger.InMemory,
			SyncWrites: cfg.Badger.SyncWrites,
			Logger:     logger,
		})
		if err != nil {
			return nil, err
		}
		return &Backend{KeyValueStore: s, Closer: s, Driver: cfg.Driver}, nil
	case config.DriverPostgres:
		pool, err := pg.NewPool(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		s := postgres.NewStore(pool, pg.NewTransactionManager(pool))
		return &Backend{
			KeyValueStore: s,
			Closer:        closerFunc(func() error { pool.Close(); return nil }),
			Driver:        cfg.Driver,
		}, nil
	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", cfg.Driver)
	}
}
