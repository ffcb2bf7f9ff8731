// Package redis persiste las sesiones del asistente en Redis con expiración,
// para que varias réplicas del API compartan el historial de conversación.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/bmcuruguay/panelin-api/internal/application/chat"
	"github.com/bmcuruguay/panelin-api/pkg/logger"
)

const (
	keyPrefix    = "panelin:session:"
	sessionTTL   = 30 * time.Minute
	historyLimit = 6
)

// SessionRepository implementa chat.SessionRepository sobre Redis.
type SessionRepository struct {
	client *goredis.Client
	log    *logger.Logger
}

var _ chat.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository construye el repositorio de sesiones.
func NewSessionRepository(client *goredis.Client, log *logger.Logger) *SessionRepository {
	return &SessionRepository{client: client, log: log}
}

// Get devuelve el historial de la sesión o (nil, nil) si no existe o expiró.
// Un payload corrupto se descarta: es preferible perder contexto a romper el turno.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) ([]chat.Message, error) {
	raw, err := r.client.Get(ctx, keyPrefix+sessionID).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis: leer sesión: %w", err)
	}

	var msgs []chat.Message
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		r.log.Warn().Err(err).Str("session_id", sessionID).Msg("historial corrupto, se descarta")
		return nil, nil
	}
	return msgs, nil
}

// Append agrega mensajes al historial, recorta a los últimos mensajes
// relevantes y renueva la expiración de la sesión.
func (r *SessionRepository) Append(ctx context.Context, sessionID string, msgs ...chat.Message) error {
	hist, err := r.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	hist = append(hist, msgs...)
	if len(hist) > historyLimit {
		hist = hist[len(hist)-historyLimit:]
	}

	raw, err := json.Marshal(hist)
	if err != nil {
		return fmt.Errorf("redis: serializar sesión: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+sessionID, raw, sessionTTL).Err(); err != nil {
		return fmt.Errorf("redis: guardar sesión: %w", err)
	}
	return nil
}
