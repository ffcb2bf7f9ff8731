package quoting

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
	"github.com/bmcuruguay/panelin-api/internal/domain/repository"
)

// SKUs de los accesorios que alimentan el despiece.
const (
	SKUVarilla   = "VAR38"
	SKUTuerca    = "TUE38"
	SKUTaco      = "TAC38"
	SKUArandela  = "ARA_CARR"
	SKUTortuga   = "TORTUGA"
	SKUSilicona  = "SIL_POMO"
	SKUCaballete = "CABALLE"
)

// BOMItem línea de accesorio del despiece. Total = Quantity × UnitPrice.
type BOMItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// BOMInput geometría y datos de obra desde los que se deriva el despiece.
type BOMInput struct {
	Panels        int
	Supports      int
	LengthM       float64
	WidthM        float64
	StructureType entity.StructureType
	Fijacion      entity.FixationSystem
}

// BOMGenerator deriva el despiece de fijación y sellado usando los precios del
// catálogo de accesorios.
type BOMGenerator struct {
	catalogo repository.CatalogRepository
}

// NewBOMGenerator construye el generador de despiece.
func NewBOMGenerator(catalogo repository.CatalogRepository) *BOMGenerator {
	return &BOMGenerator{catalogo: catalogo}
}

// FasteningPoints estima los puntos de fijación: dos por apoyo por panel más
// una fila perimetral cada 2.5 m lineales en ambos bordes largos. Es una
// heurística comercial, no un cálculo estructural.
func FasteningPoints(panels, supports int, lengthM float64) int {
	return int(math.Ceil(float64(panels*supports)*2 + lengthM*2/2.5))
}

// Generate arma las líneas del despiece y devuelve además el total de
// accesorios en USD. El sellador se emite siempre; los herrajes dependen del
// sistema de fijación del producto:
//
//   - varilla_tuerca: una varilla rinde 4 puntos; hormigón lleva 1 tuerca por
//     punto más taco expansivo, metal y madera llevan 2 tuercas (una por cara)
//     y sin tacos; arandela y tortuga PVC van por punto.
//   - caballete_tornillo: un caballete por punto, el tornillo aguja viene
//     incluido en el caballete.
//   - sistema indefinido: sin herrajes, solo sellador.
func (g *BOMGenerator) Generate(in BOMInput) ([]BOMItem, decimal.Decimal) {
	items := make([]BOMItem, 0, 6)
	total := decimal.Zero

	add := func(sku, name string, qty int) {
		acc := g.catalogo.FindAccessory(sku)
		line := BOMItem{
			Name:      name,
			Quantity:  qty,
			Unit:      acc.Unit,
			UnitPrice: acc.Price,
			Total:     acc.Price.Mul(decimal.NewFromInt(int64(qty))),
		}
		items = append(items, line)
		total = total.Add(line.Total)
	}

	points := FasteningPoints(in.Panels, in.Supports, in.LengthM)

	switch in.Fijacion {
	case entity.FijacionVarillaTuerca:
		add(SKUVarilla, `Varilla Roscada 3/8"`, int(math.Ceil(float64(points)/4)))

		tuercasPorPunto := 2
		if in.StructureType == entity.EstructuraHormigon {
			tuercasPorPunto = 1
		}
		add(SKUTuerca, `Tuerca 3/8"`, points*tuercasPorPunto)

		if in.StructureType == entity.EstructuraHormigon {
			add(SKUTaco, `Taco Expansivo 3/8"`, points)
		}

		add(SKUArandela, `Arandela Carrocero 3/8"`, points)
		add(SKUTortuga, "Tortuga PVC", points)

	case entity.FijacionCaballeteTornillo:
		add(SKUCaballete, "Caballete Isoroof", points)
	}

	// Un pomo de silicona cada 8 m lineales de perímetro.
	add(SKUSilicona, "Silicona Pomo", int(math.Ceil((in.LengthM*2+in.WidthM*2)/8)))

	return items, total
}
