package inventory

import (
	"context"

	"github.com/jhoicas/inventario-tiers/internal/application/dto"
	"github.com/jhoicas/inventario-tiers/internal/domain"
	"github.com/jhoicas/inventario-tiers/internal/domain/access"
)

// CatalogUseCase casos de uso de lectura: catálogo público e inventario por nivel.
type CatalogUseCase struct {
	reader  *Reader
	secrets access.Secrets
}

// NewCatalogUseCase construye el caso de uso con los secretos inyectados.
func NewCatalogUseCase(reader *Reader, secrets access.Secrets) *CatalogUseCase {
	return &CatalogUseCase{reader: reader, secrets: secrets}
}

// PublicCatalog devuelve solo los SKUs; no depende del nivel.
func (uc *CatalogUseCase) PublicCatalog(ctx context.Context) (*dto.PublicCatalogResponse, error) {
	items, err := uc.reader.ReadItems(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PublicCatalogResponse{SKUs: PublicSKUs(items)}, nil
}

// Classify expone la clasificación de la credencial con los secretos configurados.
func (uc *CatalogUseCase) Classify(credential string) access.Level {
	return access.Classify(credential, uc.secrets)
}

// Inventory devuelve la vista por nivel. Nivel 0 retorna domain.ErrUnauthorized
// sin tocar el almacén.
func (uc *CatalogUseCase) Inventory(ctx context.Context, credential string) (*dto.InventoryResponse, error) {
	level := uc.Classify(credential)
	if level == access.LevelNone {
		return nil, domain.ErrUnauthorized
	}
	items, err := uc.reader.ReadItems(ctx)
	if err != nil {
		return nil, err
	}
	resp := Project(items, level)
	return &resp, nil
}
