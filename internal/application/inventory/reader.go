package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-tiers/internal/domain"
	"github.com/jhoicas/inventario-tiers/internal/domain/entity"
	"github.com/jhoicas/inventario-tiers/pkg/logger"
)

// DefaultKey clave bajo la que se guarda la colección de ítems.
const DefaultKey = "items"

// Reader lee la colección de ítems del almacén.
type Reader struct {
	store ItemStore
	key   string
	log   *logger.Logger
}

// NewReader construye el lector. key vacía usa DefaultKey.
func NewReader(store ItemStore, key string, log *logger.Logger) *Reader {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Reader{store: store, key: key, log: log.Component("inventory_reader")}
}

// ReadItems devuelve los ítems guardados. Clave ausente o contenido malformado
// producen una colección vacía; solo un fallo del almacén retorna error.
func (r *Reader) ReadItems(ctx context.Context) ([]entity.InventoryItem, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("leer clave %q: %w: %w", r.key, domain.ErrStoreUnavailable, err)
	}
	if !found {
		return []entity.InventoryItem{}, nil
	}
	items, skipped, err := DecodeItems([]byte(raw))
	if err != nil {
		r.log.Debug().Err(err).Str("key", r.key).Msg("contenido malformado, se usa colección vacía")
		return []entity.InventoryItem{}, nil
	}
	if skipped > 0 {
		r.log.Debug().Int("skipped", skipped).Str("key", r.key).Msg("elementos no válidos omitidos")
	}
	return items, nil
}

// DecodeItems interpreta raw como un arreglo JSON de ítems. Cada objeto se lee
// campo a campo: un campo con tipo inesperado se trata como ausente y el ítem se
// conserva. Los elementos que no son objetos se omiten y se cuentan en skipped;
// err solo si raw no es un arreglo JSON.
func DecodeItems(raw []byte) (items []entity.InventoryItem, skipped int, err error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	items = make([]entity.InventoryItem, 0, len(elems))
	for _, e := range elems {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(e, &fields); err != nil || fields == nil {
			skipped++
			continue
		}
		items = append(items, decodeItem(fields))
	}
	return items, skipped, nil
}

func decodeItem(fields map[string]json.RawMessage) entity.InventoryItem {
	it := entity.InventoryItem{
		SKU:        stringField(fields["sku"]),
		StockRange: stringField(fields["stockRange"]),
		LeadTime:   stringField(fields["leadTime"]),
	}
	if lot, ok := lotField(fields["minLot"]); ok {
		it.MinLot = &lot
	}
	if ts := stringField(fields["updatedAt"]); ts != "" {
		it.UpdatedAt = &ts
	}
	return it
}

// stringField devuelve el valor si raw es un string JSON; cualquier otro tipo cuenta como vacío.
func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// lotField acepta un número o un string numérico y lo devuelve en forma canónica.
func lotField(raw json.RawMessage) (json.Number, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	var text string
	switch raw[0] {
	case '"':
		if json.Unmarshal(raw, &text) != nil {
			return "", false
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		text = string(raw)
	default:
		return "", false
	}
	return CanonicalLot(text)
}

// CanonicalLot interpreta s como decimal y lo devuelve sin exponente ni ceros de
// sobra ("1e2" → 100, "50.0" → 50).
func CanonicalLot(s string) (json.Number, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return json.Number(d.String()), true
}
