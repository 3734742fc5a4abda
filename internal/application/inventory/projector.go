package inventory

import (
	"github.com/jhoicas/inventario-tiers/internal/application/dto"
	"github.com/jhoicas/inventario-tiers/internal/domain/access"
	"github.com/jhoicas/inventario-tiers/internal/domain/entity"
)

// PublicSKUs extrae los SKUs no vacíos respetando el orden de entrada.
// Nunca devuelve nil para que se serialice como [].
func PublicSKUs(items []entity.InventoryItem) []string {
	skus := make([]string, 0, len(items))
	for _, it := range items {
		if it.SKU == "" {
			continue
		}
		skus = append(skus, it.SKU)
	}
	return skus
}

// Project arma la respuesta del endpoint restringido para level (1..3).
// No modifica items.
func Project(items []entity.InventoryItem, level access.Level) dto.InventoryResponse {
	resp := dto.InventoryResponse{Level: int(level)}
	switch {
	case level.Includes(access.LevelAudit):
		views := make([]dto.AuditItemView, 0, len(items))
		for _, it := range items {
			views = append(views, auditView(it))
		}
		resp.Items = views
	case level.Includes(access.LevelLot):
		views := make([]dto.LotItemView, 0, len(items))
		for _, it := range items {
			views = append(views, lotView(it))
		}
		resp.Items = views
	default:
		views := make([]dto.ItemView, 0, len(items))
		for _, it := range items {
			views = append(views, baseView(it))
		}
		resp.Items = views
	}
	return resp
}

func baseView(it entity.InventoryItem) dto.ItemView {
	stockRange := it.StockRange
	if stockRange == "" {
		stockRange = entity.StockRangeNone
	}
	return dto.ItemView{
		SKU:        it.SKU,
		StockRange: stockRange,
		LeadTime:   it.LeadTime,
	}
}

func lotView(it entity.InventoryItem) dto.LotItemView {
	v := dto.LotItemView{ItemView: baseView(it)}
	if it.MinLot != nil {
		lot := *it.MinLot
		v.MinLot = &lot
	}
	return v
}

func auditView(it entity.InventoryItem) dto.AuditItemView {
	v := dto.AuditItemView{LotItemView: lotView(it)}
	if it.UpdatedAt != nil && *it.UpdatedAt != "" {
		ts := *it.UpdatedAt
		v.UpdatedAt = &ts
	}
	return v
}
