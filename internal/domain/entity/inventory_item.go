package entity

import "encoding/json"

// Rangos de stock publicados. El almacén no valida el vocabulario; es informativo.
const (
	StockRangeNone     = "0"
	StockRange1To200   = "1-200"
	StockRange201To400 = "201-400"
	StockRange401To700 = "401-700"
	StockRangeOver700  = "700+"
)

// InventoryItem registro de inventario tal como se guarda en el almacén clave-valor.
// MinLot y UpdatedAt son opcionales: nil significa "sin dato" (distinto de 0 o "").
type InventoryItem struct {
	SKU        string       `json:"sku"`
	StockRange string       `json:"stockRange"`
	LeadTime   string       `json:"leadTime"`
	MinLot     *json.Number `json:"minLot,omitempty"`
	UpdatedAt  *string      `json:"updatedAt,omitempty"`
}
