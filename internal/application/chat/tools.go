package chat

import (
	"encoding/json"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bmcuruguay/panelin-api/internal/application/dto"
	"github.com/bmcuruguay/panelin-api/internal/domain"
	"github.com/bmcuruguay/panelin-api/internal/observability"
)

const (
	ToolCalculateQuote     = "calculateQuote"
	ToolCheckAutoportancia = "checkAutoportancia"
)

// EngineTools declara las herramientas del motor que el modelo puede invocar.
func EngineTools() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolCalculateQuote,
				Description: "Calcula una cotización completa de paneles: cantidad de paneles, área facturable, despiece de accesorios y total en USD con IVA incluido.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"product_id": map[string]any{
							"type":        "string",
							"description": "ID del producto del catálogo, ej: ISODEC_EPS_100",
						},
						"length_m": map[string]any{
							"type":        "number",
							"description": "Largo del área a cubrir en metros",
						},
						"width_m": map[string]any{
							"type":        "number",
							"description": "Ancho del área a cubrir en metros",
						},
						"quantity": map[string]any{
							"type":        "integer",
							"description": "Cantidad de áreas idénticas a cotizar (1 por defecto)",
						},
						"discount_pct": map[string]any{
							"type":        "number",
							"description": "Descuento porcentual entre 0 y 100",
						},
						"luz_m": map[string]any{
							"type":        "number",
							"description": "Luz entre apoyos en metros; si falta se valida el largo completo",
						},
						"include_bom": map[string]any{
							"type":        "boolean",
							"description": "Incluir el despiece de accesorios (true por defecto)",
						},
						"price_tier": map[string]any{
							"type": "string",
							"enum": []string{"online", "factory"},
						},
						"structure_type": map[string]any{
							"type": "string",
							"enum": []string{"metal", "hormigon", "madera"},
						},
					},
					"required": []string{"product_id", "length_m", "width_m"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        ToolCheckAutoportancia,
				Description: "Valida si un panel soporta una luz entre apoyos sin estructura intermedia y sugiere alternativas de mayor espesor con su ahorro energético.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"product_id": map[string]any{
							"type":        "string",
							"description": "ID del producto del catálogo",
						},
						"luz_m": map[string]any{
							"type":        "number",
							"description": "Luz entre apoyos en metros",
						},
					},
					"required": []string{"product_id", "luz_m"},
				},
			},
		},
	}
}

// dispatch ejecuta la herramienta pedida por el modelo y devuelve el resultado
// como JSON. Los errores del motor vuelven como dato, nunca como error de Go:
// el modelo debe poder leerlos y reformularlos para el cliente.
func (uc *UseCase) dispatch(call openai.ToolCall) string {
	observability.ChatToolCallsTotal.WithLabelValues(call.Function.Name).Inc()

	switch call.Function.Name {
	case ToolCalculateQuote:
		var req dto.QuoteRequest
		if err := json.Unmarshal([]byte(call.Function.Arguments), &req); err != nil {
			return errJSON("argumentos inválidos para calculateQuote")
		}
		res, err := uc.quotes.Calculate(req)
		if err != nil {
			return errJSON(errorMessage(err))
		}
		return mustJSON(res)

	case ToolCheckAutoportancia:
		var req dto.ValidationRequest
		if err := json.Unmarshal([]byte(call.Function.Arguments), &req); err != nil {
			return errJSON("argumentos inválidos para checkAutoportancia")
		}
		res, err := uc.quotes.CheckAutoportancia(req)
		if err != nil {
			return errJSON(errorMessage(err))
		}
		return mustJSON(res)
	}
	return errJSON("herramienta desconocida: " + call.Function.Name)
}

func errorMessage(err error) string {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.MensajeNotFound
	}
	return err.Error()
}

func errJSON(msg string) string {
	out, _ := json.Marshal(map[string]string{"error": msg})
	return string(out)
}

func mustJSON(v any) string {
	out, err := json.Marshal(v)
	if err != nil {
		return errJSON("no se pudo serializar el resultado")
	}
	return string(out)
}
