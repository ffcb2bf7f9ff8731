package domain

import "errors"

// Errores de dominio (sin dependencias externas). El motor nunca lanza panics
// a través de su frontera pública: todo fallo se devuelve como valor.
var (
	ErrNotFound     = errors.New("producto no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// MensajeNotFound es el texto exacto que el orquestador conversacional espera
// recibir cuando un product_id no resuelve.
const MensajeNotFound = "Producto no encontrado."
