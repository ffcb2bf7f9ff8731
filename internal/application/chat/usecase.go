package chat

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bmcuruguay/panelin-api/internal/application/usecase"
	"github.com/bmcuruguay/panelin-api/pkg/logger"
)

// maxToolRounds corta conversaciones donde el modelo encadena llamadas a
// herramientas sin converger a una respuesta final.
const maxToolRounds = 4

// UseCase conduce un turno de conversación con el asistente.
type UseCase struct {
	llm      Completer
	sessions SessionRepository
	quotes   *usecase.QuoteUseCase
	model    string
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de chat.
func NewUseCase(llm Completer, sessions SessionRepository, quotes *usecase.QuoteUseCase, model string, log *logger.Logger) *UseCase {
	return &UseCase{llm: llm, sessions: sessions, quotes: quotes, model: model, log: log}
}

// SendMessage procesa un mensaje del cliente dentro de una sesión: arma el
// contexto con el historial reciente, deja que el modelo invoque las
// herramientas del motor las veces que necesite y devuelve la respuesta final.
func (uc *UseCase) SendMessage(ctx context.Context, sessionID, message string) (string, error) {
	history, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudo leer el historial, se continúa sin contexto")
		history = nil
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: SystemPrompt(),
	})
	for _, h := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: h.Role, Content: h.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	var answer string
	for round := 0; ; round++ {
		resp, err := uc.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    uc.model,
			Messages: msgs,
			Tools:    EngineTools(),
		})
		if err != nil {
			return "", fmt.Errorf("chat: completar conversación: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("chat: el modelo no devolvió opciones")
		}

		choice := resp.Choices[0].Message
		if len(choice.ToolCalls) == 0 {
			answer = choice.Content
			break
		}
		if round >= maxToolRounds {
			uc.log.Warn().Str("session_id", sessionID).Msg("se alcanzó el límite de rondas de herramientas")
			answer = choice.Content
			break
		}

		msgs = append(msgs, choice)
		for _, call := range choice.ToolCalls {
			uc.log.Debug().
				Str("session_id", sessionID).
				Str("tool", call.Function.Name).
				Msg("ejecutando herramienta del motor")
			msgs = append(msgs, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    uc.dispatch(call),
			})
		}
	}

	if err := uc.sessions.Append(ctx, sessionID,
		Message{Role: openai.ChatMessageRoleUser, Content: message},
		Message{Role: openai.ChatMessageRoleAssistant, Content: answer},
	); err != nil {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudo persistir el historial")
	}
	return answer, nil
}
