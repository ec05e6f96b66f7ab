package badger

import (
	"context"
	"testing"

	"github.com/ogurasousui/codex-employee-directory/internal/core/employee"
	"github.com/stretchr/testify/require"
)

func TestStore_InMemory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(Config{InMemory: true})
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(ctx, "employees")
	require.ErrorIs(t, err, employee.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "employees", []byte(`[{"id":3}]`)))
	got, err := s.Get(ctx, "employees")
	require.NoError(t, err)
	require.Equal(t, `[{"id":3}]`, string(got))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(Config{Path: dir, SyncWrites: true})
	require.NoError(t, err)

	store := employee.NewStore(ctx, employee.NewKVPersister(s, ""))
	store.Dispatch(ctx, employee.NewAddAction(employee.Employee{FirstName: "Ada"}))
	require.NoError(t, s.Close())

	reopened, err := Open(Config{Path: dir})
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := employee.NewKVPersister(reopened, "").Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "Ada", loaded[0].FirstName)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(Config{})
	require.Error(t, err)
}
