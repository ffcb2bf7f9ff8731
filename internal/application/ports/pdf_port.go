package ports

import (
	"context"

	"github.com/bmcuruguay/panelin-api/internal/application/dto"
	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
)

// QuotePDFGenerator puerto de salida para la representación gráfica de una
// cotización. El adaptador concreto (Maroto, mock) resuelve el layout; la
// aplicación solo conoce este contrato.
type QuotePDFGenerator interface {
	GenerateQuotePDF(
		ctx context.Context,
		quote *dto.QuoteResult,
		product *entity.Product,
		info *entity.CompanyInfo,
	) ([]byte, error)
}
