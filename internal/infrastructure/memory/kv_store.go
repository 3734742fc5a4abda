package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-tiers/internal/application/inventory"
)

var _ inventory.ItemStore = (*KVStore)(nil)

// KVStore almacén clave-valor en memoria. Útil en desarrollo y en tests.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKVStore construye el almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

// Get devuelve el valor de key; found=false si no existe.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Put guarda value bajo key, reemplazando el anterior.
func (s *KVStore) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}

// Close no hace nada; existe para cumplir el contrato común de los drivers.
func (s *KVStore) Close() error { return nil }
