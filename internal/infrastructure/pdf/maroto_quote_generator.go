// Package pdf genera la representación gráfica de la cotización de paneles.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: BMC Uruguay + contacto  │  COTIZACIÓN + producto   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PANEL: espesor / ancho útil / autoportancia / luz validada  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA BOM: Cant | Accesorio | Unidad | P.Unit | Subtotal   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: paneles + accesorios / TOTAL USD (IVA incluido)   │
//	│  FOOTER: transferencia bancaria + sitio web                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/bmcuruguay/panelin-api/internal/application/dto"
	"github.com/bmcuruguay/panelin-api/internal/application/ports"
	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// MarotoQuoteGenerator implementa ports.QuotePDFGenerator usando Maroto v2.
type MarotoQuoteGenerator struct{}

var _ ports.QuotePDFGenerator = (*MarotoQuoteGenerator)(nil)

// NewMarotoQuoteGenerator construye el generador.
func NewMarotoQuoteGenerator() *MarotoQuoteGenerator { return &MarotoQuoteGenerator{} }

// GenerateQuotePDF genera el PDF de la cotización y devuelve sus bytes.
func (g *MarotoQuoteGenerator) GenerateQuotePDF(
	_ context.Context,
	quote *dto.QuoteResult,
	product *entity.Product,
	info *entity.CompanyInfo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización BMC Uruguay", true).
		WithAuthor(info.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(quote, info))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(panelRow(quote, product))
	m.AddRows(spanRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(quote.BOM) > 0 {
		m.AddRows(tableHeaderRow())
		for _, r := range tableDetailRows(quote.BOM) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(totalsRow(quote))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(info))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y título + producto cotizado (der).
func headerRow(quote *dto.QuoteResult, info *entity.CompanyInfo) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(info.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(info.Contact, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN DE PANELES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(quote.Product, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("SKU: "+quote.SKU, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// panelRow: geometría cotizada.
func panelRow(quote *dto.QuoteResult, product *entity.Product) core.Row {
	detalle := fmt.Sprintf("Paneles: %d   |   Área facturable: %s m²   |   Nivel de precio: %s",
		quote.PanelsNeeded, quote.TotalAreaM2, quote.PriceTier)
	if product != nil {
		detalle = fmt.Sprintf("Espesor: %d mm   |   Ancho útil: %.2f m   |   %s",
			product.ThicknessMM, product.AnchoUtil, detalle)
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New("DETALLE DEL PANEL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(detalle, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// spanRow: veredicto de autoportancia de la luz validada.
func spanRow(quote *dto.QuoteResult) core.Row {
	color := colorPrimary
	if !quote.IsSafe {
		color = colorAlert
	}
	veredicto := fmt.Sprintf("Luz validada: %.2f m   |   Autoportancia máxima: %.2f m   |   Estado: %s",
		quote.LuzValidada, quote.AutoportanciaMaxAdmitida, quote.SpanStatus)
	return row.New(8).Add(
		col.New(12).Add(
			text.New(veredicto, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Color: color}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(1).Add(text.New("Cant", header)),
		col.New(5).Add(text.New("Accesorio", header)),
		col.New(2).Add(text.New("Unidad", header)),
		col.New(2).Add(text.New("P. Unit (USD)", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right,
		})),
		col.New(2).Add(text.New("Subtotal (USD)", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right,
		})),
	)
}

func tableDetailRows(items []dto.BOMItemDTO) []core.Row {
	rows := make([]core.Row, 0, len(items))
	cell := props.Text{Size: 8, Top: 1}
	num := props.Text{Size: 8, Top: 1, Align: align.Right}
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), cell)),
			col.New(5).Add(text.New(it.Name, cell)),
			col.New(2).Add(text.New(it.Unit, cell)),
			col.New(2).Add(text.New(it.UnitPrice.StringFixed(2), num)),
			col.New(2).Add(text.New(it.Total.StringFixed(2), num)),
		))
	}
	return rows
}

// totalsRow: total final con IVA incluido.
func totalsRow(quote *dto.QuoteResult) core.Row {
	return row.New(12).Add(
		col.New(7).Add(
			text.New("IVA incluido en el total. Cotización válida por 15 días.", props.Text{
				Size: 8, Top: 4, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TOTAL USD "+quote.TotalUSD, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

func footerRow(info *entity.CompanyInfo) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(info.BankTransfer, props.Text{Size: 7, Top: 1, Color: colorGray}),
			text.New(info.Website, props.Text{Size: 7, Top: 5, Color: colorGray}),
		),
	)
}
