package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tiers/internal/application/dto"
	"github.com/jhoicas/inventario-tiers/internal/application/inventory"
	"github.com/jhoicas/inventario-tiers/internal/domain"
	"github.com/jhoicas/inventario-tiers/pkg/logger"
)

// UsageHint texto de la página por defecto.
const UsageHint = "OK. Try /api/public or /api/inventory?pw=..."

// InventoryHandler maneja el catálogo público y la vista de inventario por nivel.
type InventoryHandler struct {
	uc  *inventory.CatalogUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.CatalogUseCase, log *logger.Logger) *InventoryHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryHandler{uc: uc, log: log.Component("inventory_handler")}
}

// Public godoc
// @Summary      Catálogo público de SKUs
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.PublicCatalogResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/public [get]
func (h *InventoryHandler) Public(c *fiber.Ctx) error {
	resp, err := h.uc.PublicCatalog(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}
	return writeJSON(c, fiber.StatusOK, resp)
}

// Inventory godoc
// @Summary      Inventario por nivel de acceso
// @Description  Nivel 1: sku, stockRange, leadTime. Nivel 2: + minLot. Nivel 3: + updatedAt.
// @Tags         inventory
// @Produce      json
// @Param        pw   query     string  true  "Credencial compartida"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) Inventory(c *fiber.Ctx) error {
	resp, err := h.uc.Inventory(c.Context(), c.Query("pw"))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return writeJSON(c, fiber.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		}
		return h.internalError(c, err)
	}
	h.log.Debug().Str("request_id", GetRequestID(c)).Int("level", resp.Level).Msg("inventario servido")
	return writeJSON(c, fiber.StatusOK, resp)
}

// Usage responde la pista de uso para cualquier otra ruta.
func (h *InventoryHandler) Usage(c *fiber.Ctx) error {
	return writeText(c, fiber.StatusOK, UsageHint)
}

func (h *InventoryHandler) internalError(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Str("path", c.Path()).Msg("fallo al leer inventario")
	return writeJSON(c, fiber.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
}
