package kvstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtran/meeting-tracker/internal/kvstore"
)

func newKV(t *testing.T) *kvstore.KVStore {
	t.Helper()
	kv, err := kvstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSetGet(t *testing.T) {
	kv := newKV(t)

	require.NoError(t, kv.Set("alpha", `{"n":1}`))

	got, ok, err := kv.Get("alpha")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"n":1}`, got)
}

func TestGetMissing(t *testing.T) {
	kv := newKV(t)

	_, ok, err := kv.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetOverwrites(t *testing.T) {
	kv := newKV(t)

	require.NoError(t, kv.Set("alpha", "one"))
	require.NoError(t, kv.Set("alpha", "two"))

	got, ok, err := kv.Get("alpha")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", got)
}

func TestDelete(t *testing.T) {
	kv := newKV(t)

	require.NoError(t, kv.Set("alpha", "one"))
	require.NoError(t, kv.Delete("alpha"))

	_, ok, err := kv.Get("alpha")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is fine.
	require.NoError(t, kv.Delete("alpha"))
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/kv.db"

	kv, err := kvstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("alpha", "one"))
	require.NoError(t, kv.Close())

	// Reopening must not re-run migrations destructively.
	kv2, err := kvstore.Open(path)
	require.NoError(t, err)
	defer kv2.Close()

	got, ok, err := kv2.Get("alpha")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "one", got)
}
