package usecase

import (
	"context"
	"fmt"

	"github.com/bmcuruguay/panelin-api/internal/application/dto"
	"github.com/bmcuruguay/panelin-api/internal/application/ports"
	"github.com/bmcuruguay/panelin-api/internal/domain/repository"
)

// QuotePDFUseCase calcula la cotización y la renderiza como PDF para enviar al
// cliente final.
type QuotePDFUseCase struct {
	quotes   *QuoteUseCase
	catalogo repository.CatalogRepository
	gen      ports.QuotePDFGenerator
}

// NewQuotePDFUseCase construye el caso de uso inyectando el generador.
func NewQuotePDFUseCase(
	quotes *QuoteUseCase,
	catalogo repository.CatalogRepository,
	gen ports.QuotePDFGenerator,
) *QuotePDFUseCase {
	return &QuotePDFUseCase{quotes: quotes, catalogo: catalogo, gen: gen}
}

// Generate cotiza y devuelve los bytes del PDF.
func (uc *QuotePDFUseCase) Generate(ctx context.Context, req dto.QuoteRequest) ([]byte, error) {
	result, err := uc.quotes.Calculate(req)
	if err != nil {
		return nil, err
	}
	product := uc.catalogo.FindProduct(req.ProductID)

	b, err := uc.gen.GenerateQuotePDF(ctx, result, product, uc.catalogo.Info())
	if err != nil {
		return nil, fmt.Errorf("render de cotización: %w", err)
	}
	return b, nil
}
