package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bmcuruguay/panelin-api/internal/application/dto"
	"github.com/bmcuruguay/panelin-api/internal/application/usecase"
	"github.com/bmcuruguay/panelin-api/internal/domain"
)

// CatalogHandler expone el catálogo de paneles, accesorios y datos institucionales.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts godoc
// @Summary      Listar paneles del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListProducts())
}

// GetProduct godoc
// @Summary      Obtener panel por ID
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	out := h.uc.GetProduct(c.Params("id"))
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.MensajeNotFound})
	}
	return c.JSON(out)
}

// ListAccessories godoc
// @Summary      Listar accesorios de fijación y sellado
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.AccessoryResponse
// @Router       /api/accessories [get]
func (h *CatalogHandler) ListAccessories(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListAccessories())
}

// Info godoc
// @Summary      Datos institucionales de BMC Uruguay
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  entity.CompanyInfo
// @Router       /api/info [get]
func (h *CatalogHandler) Info(c *fiber.Ctx) error {
	return c.JSON(h.uc.Info())
}
