package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-tiers/internal/application/inventory"
)

var _ inventory.ItemStore = (*KVRepo)(nil)

const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// KVRepo almacén clave-valor sobre una tabla PostgreSQL (usable con pool o tx).
type KVRepo struct {
	q Querier
}

// NewKVRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKVRepository(q Querier) *KVRepo {
	return &KVRepo{q: q}
}

// EnsureSchema crea la tabla kv_entries si no existe.
func (r *KVRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, kvSchema); err != nil {
		return fmt.Errorf("crear kv_entries: %w", err)
	}
	return nil
}

// Get obtiene el valor de key; found=false si no hay fila.
func (r *KVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.q.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get kv: %w", err)
	}
	return value, true, nil
}

// Put inserta o reemplaza el valor de key.
func (r *KVRepo) Put(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("put kv: %w", err)
	}
	return nil
}
