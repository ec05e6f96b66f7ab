// Package memory はプロセス内メモリを永続化媒体とする KeyValueStore です。
package memory

import (
	"context"
	"sync"

	"github.com/ogurasousui/codex-employee-directory/internal/core/employee"
)

// Store はキーと値をメモリ上に保持します。値は出し入れの際にコピーされます。
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ employee.KeyValueStore = (*Store)(nil)

// NewStore は空の Store を生成します。
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get はキーに対応する値のコピーを返します。
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, employee.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set は値のコピーを保存します。
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

// Close は何もしません。
func (s *Store) Close() error {
	return nil
}
