package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	goredis "github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"github.com/bmcuruguay/panelin-api/internal/application/chat"
	"github.com/bmcuruguay/panelin-api/internal/application/usecase"
	"github.com/bmcuruguay/panelin-api/internal/infrastructure/memory"
	infrapdf "github.com/bmcuruguay/panelin-api/internal/infrastructure/pdf"
	infraredis "github.com/bmcuruguay/panelin-api/internal/infrastructure/redis"
	httpRouter "github.com/bmcuruguay/panelin-api/internal/interfaces/http"
	"github.com/bmcuruguay/panelin-api/internal/observability"
	"github.com/bmcuruguay/panelin-api/pkg/config"
	"github.com/bmcuruguay/panelin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	observability.Start(cfg.Metrics.Port)

	catalogo := memory.NewCatalogRepository(log)
	quoteUC := usecase.NewQuoteUseCase(catalogo, log)
	catalogUC := usecase.NewCatalogUseCase(catalogo)

	// PDF: representación gráfica de la cotización
	pdfGenerator := infrapdf.NewMarotoQuoteGenerator()
	quotePDFUC := usecase.NewQuotePDFUseCase(quoteUC, catalogo, pdfGenerator)

	// Asistente comercial: solo si hay credenciales de OpenAI. Sin Redis el
	// historial vive en memoria del proceso.
	var chatUC *chat.UseCase
	if cfg.AI.APIKey != "" {
		var sessions chat.SessionRepository
		if cfg.Redis.Addr != "" {
			client := goredis.NewClient(&goredis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			sessions = infraredis.NewSessionRepository(client, log)
			log.Info().Str("addr", cfg.Redis.Addr).Msg("sesiones de chat en Redis")
		} else {
			sessions = chat.NewMemorySessions(6)
			log.Warn().Msg("sesiones de chat en memoria, sin persistencia entre réplicas")
		}
		llm := openai.NewClient(cfg.AI.APIKey)
		chatUC = chat.NewUseCase(llm, sessions, quoteUC, cfg.AI.Model, log)
	} else {
		log.Warn().Msg("OPENAI_API_KEY ausente, asistente comercial deshabilitado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		QuoteUC:    quoteUC,
		QuotePDFUC: quotePDFUC,
		CatalogUC:  catalogUC,
		ChatUC:     chatUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
