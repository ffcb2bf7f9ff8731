package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bmcuruguay/panelin-api/internal/application/chat"
	"github.com/bmcuruguay/panelin-api/internal/application/dto"
)

// ChatHandler expone al asistente comercial por HTTP.
type ChatHandler struct {
	uc *chat.UseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *chat.UseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

// Send godoc
// @Summary      Conversar con el asistente comercial
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body  chatRequest  true  "Mensaje del cliente"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var in chatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message es requerido"})
	}
	if in.SessionID == "" {
		in.SessionID = uuid.New().String()
	}

	answer, err := h.uc.SendMessage(c.UserContext(), in.SessionID, in.Message)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
	}
	return c.JSON(chatResponse{SessionID: in.SessionID, Answer: answer})
}
