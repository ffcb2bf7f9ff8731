package repository

import "github.com/bmcuruguay/panelin-api/internal/domain/entity"

// CatalogRepository acceso de solo lectura al catálogo de referencia. Las
// implementaciones deben ser seguras para lectura concurrente sin locks: el
// catálogo se siembra al inicio y no cambia en runtime.
type CatalogRepository interface {
	// FindProduct devuelve el producto o nil si el id no existe.
	FindProduct(id string) *entity.Product
	// FindAccessory nunca devuelve nil: un sku ausente se resuelve con el
	// precio de respaldo documentado (lookup degradado, no error).
	FindAccessory(sku string) *entity.Accessory
	// ListProducts preserva el orden de declaración del catálogo; el
	// comparador energético depende de ese orden como desempate.
	ListProducts() []*entity.Product
	ListAccessories() []*entity.Accessory
	Info() *entity.CompanyInfo
}
