package storage

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cartd-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestSQLiteStoreSetGetDelete(t *testing.T) {
	store := setupStore(t)
	ctx := t.Context()

	if _, err := store.Get(ctx, KeyCurrentList); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before write, got %v", err)
	}
	if err := store.Set(ctx, KeyCurrentList, []byte(`{"id":"l1"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, KeyCurrentList, []byte(`{"id":"l2"}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Get(ctx, KeyCurrentList)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"id":"l2"}` {
		t.Fatalf("unexpected value: %s", got)
	}
	if err := store.Delete(ctx, KeyCurrentList); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, KeyCurrentList); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSQLiteStoreTracksUpdatedAt(t *testing.T) {
	store := setupStore(t)
	fixed := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	if err := store.Set(t.Context(), KeyUserPreferences, []byte(`{}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.UpdatedAt(t.Context(), KeyUserPreferences)
	if err != nil {
		t.Fatalf("updated at: %v", err)
	}
	if !got.Equal(fixed) {
		t.Fatalf("unexpected updated_at: %v", got)
	}
	if _, err := store.UpdatedAt(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewSQLiteStoreRejectsNilDB(t *testing.T) {
	if _, err := NewSQLiteStore(nil); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestOpenSQLiteCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cartd.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()
	if err := store.Set(t.Context(), KeyShoppingHistory, []byte(`{"purchases":[]}`)); err != nil {
		t.Fatalf("set after open: %v", err)
	}
}
