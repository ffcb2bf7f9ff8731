package chat_test

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcuruguay/panelin-api/internal/application/chat"
	"github.com/bmcuruguay/panelin-api/internal/application/usecase"
	"github.com/bmcuruguay/panelin-api/internal/infrastructure/memory"
	"github.com/bmcuruguay/panelin-api/pkg/logger"
)

// completerFake devuelve respuestas guionadas y registra cada request para
// inspeccionar qué contexto recibió el modelo.
type completerFake struct {
	respuestas []openai.ChatCompletionResponse
	requests   []openai.ChatCompletionRequest
}

func (f *completerFake) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	resp := f.respuestas[0]
	f.respuestas = f.respuestas[1:]
	return resp, nil
}

func respuestaConToolCall(id, name, args string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Role: openai.ChatMessageRoleAssistant,
				ToolCalls: []openai.ToolCall{{
					ID:       id,
					Type:     openai.ToolTypeFunction,
					Function: openai.FunctionCall{Name: name, Arguments: args},
				}},
			},
		}},
	}
}

func respuestaFinal(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: content,
			},
		}},
	}
}

func newChatUC(llm chat.Completer, sessions chat.SessionRepository) *chat.UseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	quotes := usecase.NewQuoteUseCase(memory.NewCatalogRepository(log), log)
	return chat.NewUseCase(llm, sessions, quotes, "gpt-4o-mini", log)
}

// TestSendMessage_ConToolCall: el modelo pide calculateQuote, el motor la
// resuelve y el resultado vuelve al modelo como mensaje de rol tool.
func TestSendMessage_ConToolCall(t *testing.T) {
	llm := &completerFake{respuestas: []openai.ChatCompletionResponse{
		respuestaConToolCall("call_1", chat.ToolCalculateQuote,
			`{"product_id":"ISODEC_EPS_100","length_m":10,"width_m":5}`),
		respuestaFinal("El total es USD 2812.54, IVA incluido."),
	}}
	sessions := chat.NewMemorySessions(6)
	uc := newChatUC(llm, sessions)

	answer, err := uc.SendMessage(context.Background(), "s1", "Cotizame un techo de 10x5 con Isodec 100")

	require.NoError(t, err)
	assert.Equal(t, "El total es USD 2812.54, IVA incluido.", answer)
	require.Len(t, llm.requests, 2)

	// La segunda ronda debe llevar el resultado de la herramienta.
	segunda := llm.requests[1].Messages
	last := segunda[len(segunda)-1]
	assert.Equal(t, openai.ChatMessageRoleTool, last.Role)
	assert.Equal(t, "call_1", last.ToolCallID)
	assert.Contains(t, last.Content, `"total_usd":"2812.54"`)
	assert.Contains(t, last.Content, `"panels_needed":5`)
}

// TestSendMessage_ErrorComoDato: un producto inexistente vuelve al modelo como
// {"error": ...}, nunca como error de Go que corte el turno.
func TestSendMessage_ErrorComoDato(t *testing.T) {
	llm := &completerFake{respuestas: []openai.ChatCompletionResponse{
		respuestaConToolCall("call_1", chat.ToolCalculateQuote,
			`{"product_id":"ISODEC_EPS_999","length_m":10,"width_m":5}`),
		respuestaFinal("Ese producto no está en el catálogo."),
	}}
	uc := newChatUC(llm, chat.NewMemorySessions(6))

	answer, err := uc.SendMessage(context.Background(), "s1", "Cotizame el EPS 999")

	require.NoError(t, err)
	assert.Equal(t, "Ese producto no está en el catálogo.", answer)

	segunda := llm.requests[1].Messages
	last := segunda[len(segunda)-1]
	assert.Contains(t, last.Content, `"error":"Producto no encontrado."`)
}

// TestSendMessage_SinToolCall: una consulta general se responde directo y el
// turno queda persistido en la sesión.
func TestSendMessage_SinToolCall(t *testing.T) {
	llm := &completerFake{respuestas: []openai.ChatCompletionResponse{
		respuestaFinal("BMC comercializa y asesora, no fabrica."),
	}}
	sessions := chat.NewMemorySessions(6)
	uc := newChatUC(llm, sessions)

	answer, err := uc.SendMessage(context.Background(), "s1", "¿Ustedes fabrican?")

	require.NoError(t, err)
	assert.Equal(t, "BMC comercializa y asesora, no fabrica.", answer)

	hist, err := sessions.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, openai.ChatMessageRoleUser, hist[0].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, hist[1].Role)
}

// TestSendMessage_HistorialEnContexto: los turnos previos de la sesión viajan
// en el contexto del modelo, después del system prompt.
func TestSendMessage_HistorialEnContexto(t *testing.T) {
	llm := &completerFake{respuestas: []openai.ChatCompletionResponse{
		respuestaFinal("ok"),
	}}
	sessions := chat.NewMemorySessions(6)
	require.NoError(t, sessions.Append(context.Background(), "s1",
		chat.Message{Role: openai.ChatMessageRoleUser, Content: "hola"},
		chat.Message{Role: openai.ChatMessageRoleAssistant, Content: "buenas"},
	))
	uc := newChatUC(llm, sessions)

	_, err := uc.SendMessage(context.Background(), "s1", "sigo yo")

	require.NoError(t, err)
	msgs := llm.requests[0].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, msgs[0].Role)
	assert.Equal(t, "hola", msgs[1].Content)
	assert.Equal(t, "buenas", msgs[2].Content)
	assert.Equal(t, "sigo yo", msgs[3].Content)
}

// TestMemorySessions_RecorteDeHistorial: el historial conserva solo los
// últimos mensajes configurados.
func TestMemorySessions_RecorteDeHistorial(t *testing.T) {
	sessions := chat.NewMemorySessions(2)
	ctx := context.Background()

	for _, c := range []string{"a", "b", "c"} {
		require.NoError(t, sessions.Append(ctx, "s1", chat.Message{Role: "user", Content: c}))
	}

	hist, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "b", hist[0].Content)
	assert.Equal(t, "c", hist[1].Content)
}
