package entity

import "github.com/shopspring/decimal"

// Accessory herraje o sellador del catálogo, con el mismo ciclo de vida
// inmutable que Product.
type Accessory struct {
	SKU      string
	Name     string
	Unit     string
	Price    decimal.Decimal
	Supplier string
	Type     string
}
