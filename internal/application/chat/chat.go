// Package chat orquesta el asistente comercial: conversa con el modelo de
// OpenAI, resuelve llamadas a herramientas del motor de cotización y persiste
// el historial por sesión.
package chat

import (
	"context"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// Completer abstrae el cliente de chat de OpenAI para poder simularlo en tests.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Message un turno persistido del historial de la sesión.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionRepository guarda el historial reciente de cada sesión de chat.
// Get devuelve (nil, nil) cuando la sesión no existe o expiró.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) ([]Message, error)
	Append(ctx context.Context, sessionID string, msgs ...Message) error
}

// memorySessions historial en memoria del proceso. Suficiente para el REPL de
// consola y para tests; en producción se usa la implementación sobre Redis.
type memorySessions struct {
	mu       sync.Mutex
	limit    int
	sessions map[string][]Message
}

// NewMemorySessions crea un repositorio de sesiones en memoria que conserva
// los últimos historyLimit mensajes por sesión.
func NewMemorySessions(historyLimit int) SessionRepository {
	return &memorySessions{limit: historyLimit, sessions: make(map[string][]Message)}
}

func (m *memorySessions) Get(_ context.Context, sessionID string) ([]Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	hist := m.sessions[sessionID]
	out := make([]Message, len(hist))
	copy(out, hist)
	return out, nil
}

func (m *memorySessions) Append(_ context.Context, sessionID string, msgs ...Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	hist := append(m.sessions[sessionID], msgs...)
	if len(hist) > m.limit {
		hist = hist[len(hist)-m.limit:]
	}
	m.sessions[sessionID] = hist
	return nil
}
