package dto

// ErrorResponse cuerpo de error HTTP. Para la pasarela de tools el mismo
// mensaje viaja como {"error": "..."} dentro del resultado de la función.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
