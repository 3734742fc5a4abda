package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/inventario-tiers/internal/application/inventory"
	"github.com/jhoicas/inventario-tiers/pkg/config"
)

var _ inventory.ItemStore = (*KVStore)(nil)

// KVStore almacén clave-valor sobre Redis (GET/SET de strings).
type KVStore struct {
	client *goredis.Client
}

// NewKVStore abre el cliente a partir de REDIS_URL y verifica la conexión.
func NewKVStore(ctx context.Context, cfg config.RedisConfig) (*KVStore, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &KVStore{client: client}, nil
}

// Get devuelve el valor de key; redis.Nil se traduce a found=false.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return v, true, nil
}

// Put guarda value bajo key sin expiración.
func (s *KVStore) Put(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close cierra el cliente.
func (s *KVStore) Close() error {
	return s.client.Close()
}
