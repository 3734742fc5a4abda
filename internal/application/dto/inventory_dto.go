package dto

import "encoding/json"

// PublicCatalogResponse respuesta de GET /api/public: solo SKUs.
type PublicCatalogResponse struct {
	SKUs []string `json:"skus"`
}

// ItemView campos visibles desde el nivel 1.
type ItemView struct {
	SKU        string `json:"sku"`
	StockRange string `json:"stockRange"`
	LeadTime   string `json:"leadTime"`
}

// LotItemView nivel 2: agrega el lote mínimo (null si no hay dato).
type LotItemView struct {
	ItemView
	MinLot *json.Number `json:"minLot"`
}

// AuditItemView nivel 3: agrega la fecha de actualización (null si no hay dato).
type AuditItemView struct {
	LotItemView
	UpdatedAt *string `json:"updatedAt"`
}

// InventoryResponse respuesta de GET /api/inventory.
// Items es []ItemView, []LotItemView o []AuditItemView según Level.
type InventoryResponse struct {
	Level int `json:"level"`
	Items any `json:"items"`
}
