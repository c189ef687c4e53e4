package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadSaveJSONAcrossBackends(t *testing.T) {
	dir := t.TempDir()
	backends := []struct {
		name    string
		backend Backend
		path    string
	}{
		{"sqlite", BackendSQLite, filepath.Join(dir, "kv.db")},
		{"json", BackendJSON, filepath.Join(dir, "json")},
		{"memory", BackendMemory, ""},
	}
	for _, tc := range backends {
		t.Run(tc.name, func(t *testing.T) {
			store, err := Open(tc.backend, tc.path)
			if err != nil {
				t.Fatalf("open %s: %v", tc.name, err)
			}
			defer store.Close()

			var out sample
			found, err := LoadJSON(t.Context(), store, KeyUserPreferences, &out)
			if err != nil || found {
				t.Fatalf("expected missing key, found=%v err=%v", found, err)
			}
			if err := SaveJSON(t.Context(), store, KeyUserPreferences, sample{Name: "milk", Count: 2}); err != nil {
				t.Fatalf("save: %v", err)
			}
			found, err = LoadJSON(t.Context(), store, KeyUserPreferences, &out)
			if err != nil || !found {
				t.Fatalf("expected stored key, found=%v err=%v", found, err)
			}
			if out.Name != "milk" || out.Count != 2 {
				t.Fatalf("unexpected decoded value: %+v", out)
			}
			if err := store.Delete(t.Context(), KeyUserPreferences); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, err := store.Get(t.Context(), KeyUserPreferences); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound after delete, got %v", err)
			}
		})
	}
}

func TestLoadJSONReportsCorruptPayload(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Set(t.Context(), KeyCurrentList, []byte("{not json")); err != nil {
		t.Fatalf("set: %v", err)
	}
	var out sample
	found, err := LoadJSON(t.Context(), store, KeyCurrentList, &out)
	if err == nil || !found {
		t.Fatalf("expected decode error, found=%v err=%v", found, err)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(Backend("redis"), ""); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestFileStoreWritesOneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if err := store.Set(t.Context(), KeyShoppingHistory, []byte(`{"purchases":[]}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, KeyShoppingHistory+".json")); err != nil {
		t.Fatalf("expected json file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, KeyShoppingHistory+".json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file to be renamed away, got %v", err)
	}
	if err := store.Set(t.Context(), "../escape", []byte(`{}`)); err == nil {
		t.Fatal("expected invalid key error")
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	value := []byte("abc")
	if err := store.Set(t.Context(), "k", value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'z'
	got, _ := store.Get(t.Context(), "k")
	if string(got) != "abc" {
		t.Fatalf("store aliased caller slice: %s", got)
	}
}

func TestTimestampedBackends(t *testing.T) {
	dir := t.TempDir()
	backends := []struct {
		name    string
		backend Backend
		path    string
	}{
		{"sqlite", BackendSQLite, filepath.Join(dir, "kv.db")},
		{"json", BackendJSON, filepath.Join(dir, "json")},
	}
	for _, tc := range backends {
		t.Run(tc.name, func(t *testing.T) {
			store, err := Open(tc.backend, tc.path)
			if err != nil {
				t.Fatalf("open %s: %v", tc.name, err)
			}
			defer store.Close()
			ts, ok := store.(Timestamped)
			if !ok {
				t.Fatalf("%s store should report write times", tc.name)
			}
			if _, err := ts.UpdatedAt(t.Context(), KeyCurrentList); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound before write, got %v", err)
			}
			if err := store.Set(t.Context(), KeyCurrentList, []byte(`{}`)); err != nil {
				t.Fatalf("set: %v", err)
			}
			at, err := ts.UpdatedAt(t.Context(), KeyCurrentList)
			if err != nil || at.IsZero() {
				t.Fatalf("expected write time, got %v err=%v", at, err)
			}
		})
	}
	if _, ok := Store(NewMemoryStore()).(Timestamped); ok {
		t.Fatal("memory store should not report write times")
	}
}
