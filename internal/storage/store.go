package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound       = errors.New("storage: not found")
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

const (
	KeyCurrentList     = "current-list"
	KeyShoppingHistory = "shopping-history"
	KeyUserPreferences = "user-preferences"
)

// AllKeys lists every key the application writes.
var AllKeys = []string{KeyCurrentList, KeyShoppingHistory, KeyUserPreferences}

// Store is a key/value persistence backend holding opaque JSON blobs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Timestamped is implemented by stores that record when each key was
// last written.
type Timestamped interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, error)
}

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendJSON   Backend = "json"
	BackendMemory Backend = "memory"
)

// Open builds a store for the backend. path is the sqlite database file or
// the directory holding json files; it is ignored for memory.
func Open(backend Backend, path string) (Store, error) {
	switch Backend(strings.ToLower(string(backend))) {
	case BackendSQLite, "":
		return OpenSQLite(path)
	case BackendJSON:
		return NewFileStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// LoadJSON decodes the value stored under key into v. found is false when
// the key is absent.
func LoadJSON(ctx context.Context, s Store, key string, v any) (found bool, err error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON encodes v and writes it under key, replacing any previous value.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, payload)
}
