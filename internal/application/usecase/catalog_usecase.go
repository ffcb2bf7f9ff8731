package usecase

import (
	"github.com/bmcuruguay/panelin-api/internal/application/dto"
	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
	"github.com/bmcuruguay/panelin-api/internal/domain/repository"
)

// CatalogUseCase lecturas del catálogo de referencia para la superficie HTTP.
type CatalogUseCase struct {
	catalogo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalogo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogo: catalogo}
}

// ListProducts catálogo de paneles en orden de declaración.
func (uc *CatalogUseCase) ListProducts() []dto.ProductResponse {
	products := uc.catalogo.ListProducts()
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *dto.ToProductResponse(p))
	}
	return out
}

// GetProduct ficha de un producto, nil si no existe.
func (uc *CatalogUseCase) GetProduct(id string) *dto.ProductResponse {
	return dto.ToProductResponse(uc.catalogo.FindProduct(id))
}

// ListAccessories catálogo de accesorios.
func (uc *CatalogUseCase) ListAccessories() []dto.AccessoryResponse {
	accs := uc.catalogo.ListAccessories()
	out := make([]dto.AccessoryResponse, 0, len(accs))
	for _, a := range accs {
		out = append(out, dto.ToAccessoryResponse(a))
	}
	return out
}

// Info datos institucionales.
func (uc *CatalogUseCase) Info() *entity.CompanyInfo {
	return uc.catalogo.Info()
}
