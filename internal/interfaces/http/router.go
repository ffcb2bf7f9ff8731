package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bmcuruguay/panelin-api/internal/application/chat"
	"github.com/bmcuruguay/panelin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router. ChatUC puede ser nil cuando el
// proceso corre sin credenciales de OpenAI; en ese caso la ruta no se registra.
type RouterDeps struct {
	QuoteUC    *usecase.QuoteUseCase
	QuotePDFUC *usecase.QuotePDFUseCase
	CatalogUC  *usecase.CatalogUseCase
	ChatUC     *chat.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Cotización y validación estructural
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.QuotePDFUC)
	api.Post("/quotes", quoteHandler.Calculate)
	api.Post("/quotes/pdf", quoteHandler.CalculatePDF)

	// Catálogo (público, solo lectura)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := api.Group("/products")
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)
	products.Get("/:id/autoportancia", quoteHandler.CheckAutoportancia)
	api.Get("/accessories", catalogHandler.ListAccessories)
	api.Get("/info", catalogHandler.Info)

	// Asistente comercial (opcional)
	if deps.ChatUC != nil {
		chatHandler := NewChatHandler(deps.ChatUC)
		api.Post("/chat", chatHandler.Send)
	}
}
