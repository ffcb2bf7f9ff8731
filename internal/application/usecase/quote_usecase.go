package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/bmcuruguay/panelin-api/internal/application/dto"
	"github.com/bmcuruguay/panelin-api/internal/domain"
	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
	"github.com/bmcuruguay/panelin-api/internal/domain/quoting"
	"github.com/bmcuruguay/panelin-api/internal/domain/repository"
	"github.com/bmcuruguay/panelin-api/internal/observability"
	"github.com/bmcuruguay/panelin-api/pkg/logger"
)

// QuoteUseCase expone las dos operaciones públicas del motor: calculateQuote y
// checkAutoportancia. Ambas son puras sobre el catálogo inmutable: el mismo
// input produce siempre el mismo output y puede invocarse concurrentemente sin
// coordinación.
type QuoteUseCase struct {
	catalogo repository.CatalogRepository
	bom      *quoting.BOMGenerator
	log      *logger.Logger
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(catalogo repository.CatalogRepository, log *logger.Logger) *QuoteUseCase {
	return &QuoteUseCase{
		catalogo: catalogo,
		bom:      quoting.NewBOMGenerator(catalogo),
		log:      log,
	}
}

// Calculate ejecuta la cotización completa: paneles, área facturable, nivel de
// precio, validación de luz, despiece y descuento. Un id inexistente devuelve
// domain.ErrNotFound como dato para que el orquestador lo formule en lenguaje
// natural; nunca hay pánico a través de esta frontera.
func (uc *QuoteUseCase) Calculate(req dto.QuoteRequest) (*dto.QuoteResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product := uc.catalogo.FindProduct(req.ProductID)
	if product == nil {
		return nil, domain.ErrNotFound
	}

	priceM2 := product.PriceOnlineM2
	if req.Tier() == quoting.TierFactory {
		priceM2 = product.PriceFactoryM2
	}

	panels := quoting.PanelsNeeded(req.WidthM, product.AnchoUtil)
	area := quoting.BilledArea(req.LengthM, product.AnchoUtil, panels)
	subtotal := area.Mul(priceM2).Mul(decimal.NewFromInt(int64(req.Cantidad())))

	if req.LengthM < product.LargoMin || req.LengthM > product.LargoMax {
		uc.log.Warn().
			Str("product_id", product.ID).
			Float64("length_m", req.LengthM).
			Float64("largo_min", product.LargoMin).
			Float64("largo_max", product.LargoMax).
			Msg("largo pedido fuera del rango de fabricación del producto")
	}
	if req.LuzM == nil {
		uc.log.Debug().
			Str("product_id", product.ID).
			Msg("luz no indicada, se valida contra el largo completo del panel")
	}

	luz := req.Luz()
	span := quoting.CheckSpan(product.AutoportanciaMax, luz)
	supports := quoting.Supports(req.LengthM, product.AutoportanciaMax)

	var bomItems []quoting.BOMItem
	totalAccesorios := decimal.Zero
	if req.ConBOM() {
		bomItems, totalAccesorios = uc.bom.Generate(quoting.BOMInput{
			Panels:        panels,
			Supports:      supports,
			LengthM:       req.LengthM,
			WidthM:        req.WidthM,
			StructureType: entity.StructureType(req.StructureType),
			Fijacion:      product.SistemaFijacion,
		})
	}

	total := quoting.ApplyDiscount(subtotal.Add(totalAccesorios), req.Descuento())

	observability.CotizacionesTotal.Inc()
	uc.log.Info().
		Str("product_id", product.ID).
		Int("panels", panels).
		Str("span_status", span.Estado).
		Str("total_usd", total.StringFixed(2)).
		Msg("cotización calculada")

	return &dto.QuoteResult{
		Type:                     "quote",
		Product:                  product.Name,
		SKU:                      product.SKU,
		PanelsNeeded:             panels,
		TotalAreaM2:              area.StringFixed(2),
		TotalUSD:                 total.StringFixed(2),
		AutoportanciaMaxAdmitida: product.AutoportanciaMax,
		LuzValidada:              luz,
		IsSafe:                   span.EsSeguro,
		SpanStatus:               span.Estado,
		PriceTier:                req.Tier(),
		BOM:                      toBOMDTO(bomItems),
		IVAIncluded:              true,
	}, nil
}

// CheckAutoportancia valida la luz pedida y sugiere mejoras de eficiencia
// térmica cuando existe un hermano más grueso comparable.
func (uc *QuoteUseCase) CheckAutoportancia(req dto.ValidationRequest) (*dto.ValidationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product := uc.catalogo.FindProduct(req.ProductID)
	if product == nil {
		return nil, domain.ErrNotFound
	}

	span := quoting.CheckSpan(product.AutoportanciaMax, req.LuzM)

	status := quoting.StatusRechazado
	recomendacion := quoting.RecomendacionCritica
	if span.EsSeguro {
		status = quoting.StatusSeguro
		recomendacion = quoting.RecomendacionAdmisible
	}

	observability.ValidacionesTotal.Inc()

	return &dto.ValidationResult{
		Type:             "validation",
		Product:          product.Name,
		SKU:              product.SKU,
		LuzSolicitada:    req.LuzM,
		AutoportanciaMax: product.AutoportanciaMax,
		EsSeguro:         span.EsSeguro,
		Status:           status,
		Recomendacion:    recomendacion,
		EnergySavings:    quoting.CompareEnergy(uc.catalogo.ListProducts(), product),
	}, nil
}

func toBOMDTO(items []quoting.BOMItem) []dto.BOMItemDTO {
	out := make([]dto.BOMItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.BOMItemDTO{
			Name:      it.Name,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}
	return out
}
