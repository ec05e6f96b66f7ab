package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ogurasousui/codex-employee-directory/internal/core/employee"
	"github.com/stretchr/testify/require"
)

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "directory.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)

	_, err = s.Get(ctx, "employees")
	require.ErrorIs(t, err, employee.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "employees", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "employees", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "employees")
	require.NoError(t, err)
	require.Equal(t, `[{"id":1}]`, string(got))
	require.Equal(t, path, reopened.Path())
}

func TestOpen_RequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "")
	require.Error(t, err)
}
