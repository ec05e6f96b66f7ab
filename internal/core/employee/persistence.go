package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultStorageKey は社員コレクションを保存するキーです。
const DefaultStorageKey = "employees"

// KeyValueStore は永続化媒体の抽象です。存在しないキーには ErrKeyNotFound を返します。
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Persister は Store が利用する永続化アダプタです。
type Persister interface {
	Load(ctx context.Context) ([]Employee, error)
	Save(ctx context.Context, employees []Employee) error
}

// KVPersister はコレクション全体を JSON 配列として 1 つのキーに保存します。
type KVPersister struct {
	kv  KeyValueStore
	key string
}

// NewKVPersister は KVPersister を生成します。key が空なら DefaultStorageKey を使います。
func NewKVPersister(kv KeyValueStore, key string) *KVPersister {
	if key == "" {
		key = DefaultStorageKey
	}
	return &KVPersister{kv: kv, key: key}
}

// Key は保存先のキーを返します。
func (p *KVPersister) Key() string {
	return p.key
}

// Load は保存済みのコレクションを読み込みます。
// データが無い場合は空のコレクションを、読み込みや解析に失敗した場合は空のコレクションとエラーを返します。
func (p *KVPersister) Load(ctx context.Context) ([]Employee, error) {
	raw, err := p.kv.Get(ctx, p.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []Employee{}, nil
		}
		return []Employee{}, fmt.Errorf("employee: load %s: %w", p.key, err)
	}
	if len(raw) == 0 {
		return []Employee{}, nil
	}

	var employees []Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		return []Employee{}, fmt.Errorf("%w: %s: %v", ErrCorruptState, p.key, err)
	}
	if employees == nil {
		employees = []Employee{}
	}
	return employees, nil
}

// Save はコレクション全体を上書き保存します。
func (p *KVPersister) Save(ctx context.Context, employees []Employee) error {
	if employees == nil {
		employees = []Employee{}
	}
	raw, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("employee: encode %s: %w", p.key, err)
	}
	if err := p.kv.Set(ctx, p.key, raw); err != nil {
		return fmt.Errorf("employee: save %s: %w", p.key, err)
	}
	return nil
}
