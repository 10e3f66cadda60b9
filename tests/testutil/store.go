package testutil

import (
	"log/slog"
	"testing"

	"github.com/mtran/meeting-tracker/internal/kvstore"
	"github.com/mtran/meeting-tracker/internal/storage"
)

// NewTestKV creates an in-memory KVStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestKV(t *testing.T) *kvstore.KVStore {
	t.Helper()

	kv, err := kvstore.Open(":memory:")
	if err != nil {
		t.Fatalf("creating test kv store: %v", err)
	}

	t.Cleanup(func() {
		if err := kv.Close(); err != nil {
			t.Errorf("closing test kv store: %v", err)
		}
	})

	return kv
}

// NewTestAdapter creates a storage adapter over an in-memory KVStore.
func NewTestAdapter(t *testing.T) *storage.Adapter {
	t.Helper()
	return storage.New(NewTestKV(t), slog.Default())
}
