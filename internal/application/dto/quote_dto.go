package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bmcuruguay/panelin-api/internal/domain"
	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
	"github.com/bmcuruguay/panelin-api/internal/domain/quoting"
)

// QuoteRequest parámetros de la operación calculateQuote. Los campos opcionales
// van como punteros para distinguir "omitido" de "cero"; la validación estricta
// corre antes de entrar al pipeline de cálculo.
type QuoteRequest struct {
	ProductID     string   `json:"product_id"`
	LengthM       float64  `json:"length_m"`
	WidthM        float64  `json:"width_m"`
	Quantity      *int     `json:"quantity,omitempty"`
	DiscountPct   *float64 `json:"discount_pct,omitempty"`
	LuzM          *float64 `json:"luz_m,omitempty"`
	IncludeBOM    *bool    `json:"include_bom,omitempty"`
	PriceTier     string   `json:"price_tier,omitempty"`
	StructureType string   `json:"structure_type,omitempty"`
}

// Validate rechaza entradas malformadas con un error estructurado en lugar de
// dejar que NaN/valores fuera de rango contaminen la aritmética.
func (r *QuoteRequest) Validate() error {
	if r.ProductID == "" {
		return fmt.Errorf("%w: product_id es obligatorio", domain.ErrInvalidInput)
	}
	if !(r.LengthM > 0) {
		return fmt.Errorf("%w: length_m debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if !(r.WidthM > 0) {
		return fmt.Errorf("%w: width_m debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		return fmt.Errorf("%w: quantity debe ser al menos 1", domain.ErrInvalidInput)
	}
	if r.DiscountPct != nil && (*r.DiscountPct < 0 || *r.DiscountPct > 100) {
		return fmt.Errorf("%w: discount_pct debe estar entre 0 y 100", domain.ErrInvalidInput)
	}
	if r.LuzM != nil && !(*r.LuzM > 0) {
		return fmt.Errorf("%w: luz_m debe ser mayor a 0", domain.ErrInvalidInput)
	}
	switch r.PriceTier {
	case "", quoting.TierOnline, quoting.TierFactory:
	default:
		return fmt.Errorf("%w: price_tier debe ser online o factory", domain.ErrInvalidInput)
	}
	switch entity.StructureType(r.StructureType) {
	case "", entity.EstructuraMetal, entity.EstructuraHormigon, entity.EstructuraMadera:
	default:
		return fmt.Errorf("%w: structure_type debe ser metal, hormigon o madera", domain.ErrInvalidInput)
	}
	return nil
}

// Tier nivel de precio efectivo (online por defecto).
func (r *QuoteRequest) Tier() string {
	if r.PriceTier == quoting.TierFactory {
		return quoting.TierFactory
	}
	return quoting.TierOnline
}

// Cantidad cantidad efectiva de áreas a cotizar (1 por defecto).
func (r *QuoteRequest) Cantidad() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// Descuento porcentaje de descuento efectivo (0 por defecto).
func (r *QuoteRequest) Descuento() float64 {
	if r.DiscountPct == nil {
		return 0
	}
	return *r.DiscountPct
}

// Luz luz a validar. Sin luz_m explícita se valida contra el largo completo
// del panel; simplificación documentada, no se corrige en silencio.
func (r *QuoteRequest) Luz() float64 {
	if r.LuzM == nil {
		return r.LengthM
	}
	return *r.LuzM
}

// ConBOM indica si se genera el despiece (true por defecto).
func (r *QuoteRequest) ConBOM() bool {
	return r.IncludeBOM == nil || *r.IncludeBOM
}

// ValidationRequest parámetros de checkAutoportancia.
type ValidationRequest struct {
	ProductID string  `json:"product_id"`
	LuzM      float64 `json:"luz_m"`
}

// Validate valida la solicitud de autoportancia.
func (r *ValidationRequest) Validate() error {
	if r.ProductID == "" {
		return fmt.Errorf("%w: product_id es obligatorio", domain.ErrInvalidInput)
	}
	if !(r.LuzM > 0) {
		return fmt.Errorf("%w: luz_m debe ser mayor a 0", domain.ErrInvalidInput)
	}
	return nil
}

// BOMItemDTO línea del despiece en la respuesta.
type BOMItemDTO struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// QuoteResult cotización completa. Los montos formateados a dos decimales; el
// IVA uruguayo ya viene incluido en el total mostrado.
type QuoteResult struct {
	Type                     string       `json:"type"`
	Product                  string       `json:"product"`
	SKU                      string       `json:"sku"`
	PanelsNeeded             int          `json:"panels_needed"`
	TotalAreaM2              string       `json:"total_area_m2"`
	TotalUSD                 string       `json:"total_usd"`
	AutoportanciaMaxAdmitida float64      `json:"autoportancia_max_admitida"`
	LuzValidada              float64      `json:"luz_validada"`
	IsSafe                   bool         `json:"is_safe"`
	SpanStatus               string       `json:"span_status"`
	PriceTier                string       `json:"price_tier"`
	BOM                      []BOMItemDTO `json:"bom"`
	IVAIncluded              bool         `json:"iva_included"`
}

// ValidationResult veredicto de autoportancia con recomendación comercial y,
// cuando es computable, la comparación de eficiencia térmica.
type ValidationResult struct {
	Type             string                    `json:"type"`
	Product          string                    `json:"product"`
	SKU              string                    `json:"sku"`
	LuzSolicitada    float64                   `json:"luz_solicitada"`
	AutoportanciaMax float64                   `json:"autoportancia_max"`
	EsSeguro         bool                      `json:"es_seguro"`
	Status           string                    `json:"status"`
	Recomendacion    string                    `json:"recomendacion"`
	EnergySavings    *quoting.EnergyComparison `json:"energy_savings,omitempty"`
}
