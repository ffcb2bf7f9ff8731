package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bmcuruguay/panelin-api/internal/application/dto"
	"github.com/bmcuruguay/panelin-api/internal/application/usecase"
)

// QuoteHandler maneja las peticiones HTTP de cotización y validación.
type QuoteHandler struct {
	uc    *usecase.QuoteUseCase
	pdfUC *usecase.QuotePDFUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase, pdfUC *usecase.QuotePDFUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc, pdfUC: pdfUC}
}

// Calculate godoc
// @Summary      Calcular cotización de paneles
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Parámetros de la cotización"
// @Success      200   {object}  dto.QuoteResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Calculate(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Calculate(in)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(out)
}

// CalculatePDF godoc
// @Summary      Generar cotización en PDF
// @Tags         quotes
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.QuoteRequest  true  "Parámetros de la cotización"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes/pdf [post]
func (h *QuoteHandler) CalculatePDF(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdfBytes, err := h.pdfUC.Generate(c.UserContext(), in)
	if err != nil {
		return writeEngineError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cotizacion.pdf"`)
	return c.Send(pdfBytes)
}

// CheckAutoportancia godoc
// @Summary      Validar autoportancia de un panel para una luz dada
// @Tags         quotes
// @Produce      json
// @Param        id     path   string  true  "ID del producto"
// @Param        luz_m  query  number  true  "Luz entre apoyos en metros"
// @Success      200    {object}  dto.ValidationResult
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/products/{id}/autoportancia [get]
func (h *QuoteHandler) CheckAutoportancia(c *fiber.Ctx) error {
	in := dto.ValidationRequest{
		ProductID: c.Params("id"),
		LuzM:      c.QueryFloat("luz_m"),
	}
	out, err := h.uc.CheckAutoportancia(in)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(out)
}
