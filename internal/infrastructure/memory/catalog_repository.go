// Package memory implementa el catálogo de referencia en memoria: se siembra
// una vez al construir el repositorio y después solo se lee, sin locks ni I/O.
package memory

import (
	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
	"github.com/bmcuruguay/panelin-api/internal/domain/repository"
	"github.com/bmcuruguay/panelin-api/internal/observability"
	"github.com/bmcuruguay/panelin-api/pkg/logger"
)

// Verificación en tiempo de compilación del contrato del repositorio.
var _ repository.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository catálogo BMC en memoria.
type CatalogRepository struct {
	products         []*entity.Product
	productsByID     map[string]*entity.Product
	accessories      []*entity.Accessory
	accessoriesBySKU map[string]*entity.Accessory
	info             *entity.CompanyInfo
	log              *logger.Logger
}

// NewCatalogRepository siembra el catálogo v6.0 y lo deja listo para lecturas
// concurrentes.
func NewCatalogRepository(log *logger.Logger) *CatalogRepository {
	r := &CatalogRepository{
		products:         productos,
		productsByID:     make(map[string]*entity.Product, len(productos)),
		accessories:      accesorios,
		accessoriesBySKU: make(map[string]*entity.Accessory, len(accesorios)),
		info:             &institucional,
		log:              log,
	}
	for _, p := range productos {
		r.productsByID[p.ID] = p
	}
	for _, a := range accesorios {
		r.accessoriesBySKU[a.SKU] = a
	}
	return r
}

// FindProduct devuelve el producto o nil si el id no existe en el catálogo.
func (r *CatalogRepository) FindProduct(id string) *entity.Product {
	return r.productsByID[id]
}

// FindAccessory nunca devuelve nil. Un sku ausente se resuelve con el precio
// de respaldo documentado (o cero si tampoco hay respaldo) y se reporta como
// lookup degradado: warn + contador, no error.
func (r *CatalogRepository) FindAccessory(sku string) *entity.Accessory {
	if acc, ok := r.accessoriesBySKU[sku]; ok {
		return acc
	}

	observability.AccesoriosFallbackTotal.Inc()
	r.log.Warn().Str("sku", sku).Msg("accesorio fuera de catálogo, se aplica precio de respaldo")

	price, ok := preciosRespaldo[sku]
	if !ok {
		price = precio("0")
	}
	return &entity.Accessory{SKU: sku, Name: sku, Unit: "unid", Price: price, Supplier: "BMC"}
}

// ListProducts devuelve los productos en orden de declaración del catálogo.
func (r *CatalogRepository) ListProducts() []*entity.Product {
	return r.products
}

// ListAccessories devuelve los accesorios del catálogo.
func (r *CatalogRepository) ListAccessories() []*entity.Accessory {
	return r.accessories
}

// Info datos institucionales de BMC.
func (r *CatalogRepository) Info() *entity.CompanyInfo {
	return r.info
}
