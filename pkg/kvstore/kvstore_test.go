package kvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowx/pkg/kvstore"
)

func exerciseStore(t *testing.T, s kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "flow-x_tasks")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	require.NoError(t, s.Set(ctx, "flow-x_tasks", []byte(`[{"id":"1"}]`)))
	got, err := s.Get(ctx, "flow-x_tasks")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, s.Set(ctx, "flow-x_tasks", []byte(`[]`)))
	got, err = s.Get(ctx, "flow-x_tasks")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.Delete(ctx, "flow-x_tasks"))
	_, err = s.Get(ctx, "flow-x_tasks")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	// deleting a missing key is not an error
	require.NoError(t, s.Delete(ctx, "flow-x_tasks"))
}

func TestMemoryStore(t *testing.T) {
	s := kvstore.NewMemory()
	defer s.Close()
	exerciseStore(t, s)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := kvstore.NewMemory()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'x'

	out, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s, err := kvstore.NewFile(dir)
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestFileStore_WritesOneFilePerKey(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := kvstore.NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "flow-x_user", []byte(`{"username":"ana"}`)))

	data, err := os.ReadFile(filepath.Join(dir, "flow-x_user.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"ana"}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not linger")
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	s, err := kvstore.NewFile(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", `a\b`, ".."} {
		assert.Error(t, s.Set(context.Background(), key, []byte("x")), key)
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := kvstore.NewSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "flowx.db")

	s, err := kvstore.NewSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "flow-x_perf", []byte(`[{"date":"2026-03-02"}]`)))
	require.NoError(t, s.Close())

	s, err = kvstore.NewSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "flow-x_perf")
	require.NoError(t, err)
	assert.Equal(t, `[{"date":"2026-03-02"}]`, string(got))
}

func TestRedisStore_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	s := kvstore.NewRedisWithClient(client, "flowx")
	defer s.Close()

	_, err := s.Get(context.Background(), "flow-x_tasks")
	require.Error(t, err)
	assert.NotErrorIs(t, err, kvstore.ErrNotFound)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := kvstore.Open(ctx, kvstore.Options{Driver: kvstore.DriverMemory})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = kvstore.Open(ctx, kvstore.Options{Driver: kvstore.DriverFile, Dir: t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = kvstore.Open(ctx, kvstore.Options{Driver: "etcd"})
	assert.Error(t, err)

	_, err = kvstore.Open(ctx, kvstore.Options{Driver: kvstore.DriverRedis})
	assert.Error(t, err)
}
