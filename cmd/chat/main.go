// Consola del asistente comercial: un REPL sobre el mismo motor de cotización
// que expone el API, útil para probar prompts y herramientas sin levantar HTTP.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/bmcuruguay/panelin-api/internal/application/chat"
	"github.com/bmcuruguay/panelin-api/internal/application/usecase"
	"github.com/bmcuruguay/panelin-api/internal/infrastructure/memory"
	"github.com/bmcuruguay/panelin-api/pkg/config"
	"github.com/bmcuruguay/panelin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if cfg.AI.APIKey == "" {
		fmt.Fprintln(os.Stderr, "OPENAI_API_KEY es requerida para la consola de chat")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	catalogo := memory.NewCatalogRepository(log)
	quoteUC := usecase.NewQuoteUseCase(catalogo, log)
	sessions := chat.NewMemorySessions(6)
	llm := openai.NewClient(cfg.AI.APIKey)
	chatUC := chat.NewUseCase(llm, sessions, quoteUC, cfg.AI.Model, log)

	sessionID := uuid.New().String()
	fmt.Println("Asistente BMC Uruguay. Escriba su consulta (Ctrl+D para salir).")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		msg := strings.TrimSpace(scanner.Text())
		if msg == "" {
			continue
		}
		answer, err := chatUC.SendMessage(context.Background(), sessionID, msg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		fmt.Println(answer)
	}
}
