// Package kvstore elige e inicializa el backend clave-valor según STORE_DRIVER.
package kvstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-tiers/internal/infrastructure/itemfile"
	"github.com/jhoicas/inventario-tiers/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-tiers/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-tiers/internal/infrastructure/redis"
	"github.com/jhoicas/inventario-tiers/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-tiers/pkg/config"
	"github.com/jhoicas/inventario-tiers/pkg/logger"
)

// Store contrato común de los drivers: lectura para el servicio, escritura para el seed.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Close() error
}

type postgresStore struct {
	*postgres.KVRepo
	pool *pgxpool.Pool
}

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Open abre el driver configurado. Con driver memory y STORE_SEED_FILE definido,
// carga el archivo bajo cfg.Store.Key.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("kvstore")

	switch cfg.Store.Driver {
	case config.DriverMemory:
		s := memory.NewKVStore()
		if cfg.Store.SeedFile != "" {
			if err := Seed(ctx, s, cfg.Store.Key, cfg.Store.SeedFile, ""); err != nil {
				return nil, err
			}
			log.Info().Str("file", cfg.Store.SeedFile).Msg("almacén en memoria precargado")
		}
		return s, nil
	case config.DriverRedis:
		return redis.NewKVStore(ctx, cfg.Redis)
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		repo := postgres.NewKVRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &postgresStore{KVRepo: repo, pool: pool}, nil
	case config.DriverSQLite:
		return sqlite.NewKVStore(ctx, cfg.SQLite.Path)
	default:
		return nil, fmt.Errorf("driver de almacén desconocido: %q", cfg.Store.Driver)
	}
}

// Seed decodifica el archivo de ítems y lo guarda como arreglo JSON bajo key.
func Seed(ctx context.Context, s Store, key, path, charset string) error {
	items, err := itemfile.DecodeFile(path, charset)
	if err != nil {
		return fmt.Errorf("leer %s: %w", path, err)
	}
	value, err := itemfile.Encode(items)
	if err != nil {
		return err
	}
	if err := s.Put(ctx, key, value); err != nil {
		return fmt.Errorf("guardar clave %q: %w", key, err)
	}
	return nil
}
