package store

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/abhisek/aimarketcap/ent"
	entkv "github.com/abhisek/aimarketcap/ent/kv"
)

// KV is a string key-value table.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes each key/value pair in a single transaction.
	Set(ctx context.Context, pairs map[string]string) error

	// Delete removes keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// entKV implements KV using the ent client.
type entKV struct {
	client *ent.Client
}

func (k *entKV) Get(ctx context.Context, key string) (string, bool, error) {
	row, err := k.client.KV.Query().
		Where(entkv.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return row.Data, true, nil
}

func (k *entKV) Set(ctx context.Context, pairs map[string]string) error {
	if len(pairs) == 0 {
		return nil
	}
	builders := make([]*ent.KVCreate, 0, len(pairs))
	for key, value := range pairs {
		builders = append(builders, k.client.KV.Create().
			SetKey(key).
			SetData(value))
	}
	err := k.client.KV.CreateBulk(builders...).
		OnConflictColumns(entkv.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set %d keys: %w", len(pairs), err)
	}
	return nil
}

func (k *entKV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := k.client.KV.Delete().
		Where(entkv.KeyIn(keys...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete %d keys: %w", len(keys), err)
	}
	return nil
}

// memoryKV is an in-process KV used when the database is unavailable.
type memoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKV returns a KV that lives only as long as the process. It is
// safe for concurrent use.
func NewMemoryKV() KV {
	return &memoryKV{values: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryKV) Set(_ context.Context, pairs map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	maps.Copy(m.values, pairs)
	return nil
}

func (m *memoryKV) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}
