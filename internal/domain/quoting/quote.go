package quoting

import (
	"math"

	"github.com/shopspring/decimal"
)

// Price tiers del catálogo.
const (
	TierOnline  = "online"
	TierFactory = "factory"
)

var cien = decimal.NewFromInt(100)

// PanelsNeeded paneles enteros para cubrir el ancho pedido. Siempre redondea
// hacia arriba: la cobertura parcial de un panel se cobra como panel completo.
func PanelsNeeded(widthM, anchoUtil float64) int {
	return int(math.Ceil(widthM / anchoUtil))
}

// BilledArea área facturable: el largo por el ancho útil realmente cubierto
// con paneles enteros, no el ancho literal pedido (el material se compra por
// panel completo).
func BilledArea(lengthM, anchoUtil float64, panels int) decimal.Decimal {
	return decimal.NewFromFloat(lengthM).
		Mul(decimal.NewFromFloat(anchoUtil).Mul(decimal.NewFromInt(int64(panels))))
}

// ApplyDiscount descuenta discountPct por ciento sobre la base (paneles más
// accesorios). Con 0 devuelve la base intacta.
func ApplyDiscount(base decimal.Decimal, discountPct float64) decimal.Decimal {
	if discountPct == 0 {
		return base
	}
	descuento := base.Mul(decimal.NewFromFloat(discountPct)).Div(cien)
	return base.Sub(descuento)
}
