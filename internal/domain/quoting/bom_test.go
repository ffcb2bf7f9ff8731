package quoting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
	"github.com/bmcuruguay/panelin-api/internal/domain/quoting"
	"github.com/bmcuruguay/panelin-api/internal/domain/repository"
)

// catalogoStub catálogo mínimo con los precios de lista de accesorios.
type catalogoStub struct{}

var _ repository.CatalogRepository = (*catalogoStub)(nil)

var preciosStub = map[string]string{
	quoting.SKUVarilla:   "3.81",
	quoting.SKUTuerca:    "0.15",
	quoting.SKUTaco:      "1.17",
	quoting.SKUArandela:  "2.05",
	quoting.SKUTortuga:   "1.55",
	quoting.SKUSilicona:  "11.58",
	quoting.SKUCaballete: "9.20",
}

func (catalogoStub) FindProduct(string) *entity.Product { return nil }

func (catalogoStub) FindAccessory(sku string) *entity.Accessory {
	price := decimal.Zero
	if s, ok := preciosStub[sku]; ok {
		price = decimal.RequireFromString(s)
	}
	return &entity.Accessory{SKU: sku, Name: sku, Unit: "unid", Price: price}
}

func (catalogoStub) ListProducts() []*entity.Product      { return nil }
func (catalogoStub) ListAccessories() []*entity.Accessory { return nil }
func (catalogoStub) Info() *entity.CompanyInfo            { return nil }

// TestFasteningPoints_VectorReferencia: 5 paneles sobre 3 apoyos a lo largo de
// 10 m producen 38 puntos de fijación (30 de apoyos + 8 perimetrales).
func TestFasteningPoints_VectorReferencia(t *testing.T) {
	assert.Equal(t, 38, quoting.FasteningPoints(5, 3, 10))
}

func porNombre(t *testing.T, items []quoting.BOMItem, nombre string) quoting.BOMItem {
	t.Helper()
	for _, it := range items {
		if it.Name == nombre {
			return it
		}
	}
	t.Fatalf("línea %q ausente del despiece", nombre)
	return quoting.BOMItem{}
}

// TestGenerate_VarillaTuercaMetal reproduce el despiece del caso de
// referencia: Isodec a estructura metálica, 10 × 5 m, 5 paneles, 3 apoyos.
func TestGenerate_VarillaTuercaMetal(t *testing.T) {
	gen := quoting.NewBOMGenerator(catalogoStub{})

	items, total := gen.Generate(quoting.BOMInput{
		Panels: 5, Supports: 3, LengthM: 10, WidthM: 5,
		StructureType: entity.EstructuraMetal,
		Fijacion:      entity.FijacionVarillaTuerca,
	})

	require.Len(t, items, 5)

	// Una varilla rinde 4 puntos: ceil(38/4) = 10.
	assert.Equal(t, 10, porNombre(t, items, `Varilla Roscada 3/8"`).Quantity)
	// Metal lleva 2 tuercas por punto, una por cara.
	assert.Equal(t, 76, porNombre(t, items, `Tuerca 3/8"`).Quantity)
	assert.Equal(t, 38, porNombre(t, items, `Arandela Carrocero 3/8"`).Quantity)
	assert.Equal(t, 38, porNombre(t, items, "Tortuga PVC").Quantity)
	// Perímetro 30 m lineales: ceil(30/8) = 4 pomos.
	assert.Equal(t, 4, porNombre(t, items, "Silicona Pomo").Quantity)

	assert.Equal(t, "232.62", total.StringFixed(2))
}

// TestGenerate_VarillaTuercaHormigon: hormigón cambia el kit, 1 tuerca por
// punto más taco expansivo.
func TestGenerate_VarillaTuercaHormigon(t *testing.T) {
	gen := quoting.NewBOMGenerator(catalogoStub{})

	items, _ := gen.Generate(quoting.BOMInput{
		Panels: 5, Supports: 3, LengthM: 10, WidthM: 5,
		StructureType: entity.EstructuraHormigon,
		Fijacion:      entity.FijacionVarillaTuerca,
	})

	require.Len(t, items, 6)
	assert.Equal(t, 38, porNombre(t, items, `Tuerca 3/8"`).Quantity)
	assert.Equal(t, 38, porNombre(t, items, `Taco Expansivo 3/8"`).Quantity)
}

// TestGenerate_CaballeteTornillo: Isoroof lleva un caballete por punto y nada
// del kit de varilla; el tornillo aguja viene incluido en el caballete.
func TestGenerate_CaballeteTornillo(t *testing.T) {
	gen := quoting.NewBOMGenerator(catalogoStub{})

	items, total := gen.Generate(quoting.BOMInput{
		Panels: 5, Supports: 4, LengthM: 6, WidthM: 5,
		StructureType: entity.EstructuraMadera,
		Fijacion:      entity.FijacionCaballeteTornillo,
	})

	require.Len(t, items, 2)

	// ceil(5*4*2 + 6*2/2.5) = ceil(44.8) = 45 puntos.
	caballetes := porNombre(t, items, "Caballete Isoroof")
	assert.Equal(t, 45, caballetes.Quantity)
	assert.Equal(t, "414.00", caballetes.Total.StringFixed(2))

	// Perímetro 22 m: ceil(22/8) = 3 pomos.
	assert.Equal(t, 3, porNombre(t, items, "Silicona Pomo").Quantity)
	assert.Equal(t, "448.74", total.StringFixed(2))
}

// TestGenerate_SinSistemaFijacion: un producto sin sistema declarado solo
// lleva sellador.
func TestGenerate_SinSistemaFijacion(t *testing.T) {
	gen := quoting.NewBOMGenerator(catalogoStub{})

	items, total := gen.Generate(quoting.BOMInput{
		Panels: 2, Supports: 2, LengthM: 4, WidthM: 2,
		Fijacion: entity.FijacionIndefinida,
	})

	require.Len(t, items, 1)
	assert.Equal(t, "Silicona Pomo", items[0].Name)
	// Perímetro 12 m: ceil(12/8) = 2 pomos.
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "23.16", total.StringFixed(2))
}

// TestGenerate_TotalEsSumaDeLineas: el total devuelto coincide con la suma de
// los subtotales línea a línea.
func TestGenerate_TotalEsSumaDeLineas(t *testing.T) {
	gen := quoting.NewBOMGenerator(catalogoStub{})

	items, total := gen.Generate(quoting.BOMInput{
		Panels: 3, Supports: 2, LengthM: 7, WidthM: 3.2,
		StructureType: entity.EstructuraMetal,
		Fijacion:      entity.FijacionVarillaTuerca,
	})

	suma := decimal.Zero
	for _, it := range items {
		assert.True(t, it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))).Equal(it.Total))
		suma = suma.Add(it.Total)
	}
	assert.True(t, suma.Equal(total))
}
