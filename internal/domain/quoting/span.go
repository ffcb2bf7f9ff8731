// Package quoting implementa el motor determinista de cotización y validación
// estructural: admisibilidad de luces, despiece de fijación y sellado,
// comparación de eficiencia térmica y cálculo de totales. Todas las funciones
// son puras sobre el catálogo inmutable; una luz inadmisible es una señal de
// negocio, nunca un error.
package quoting

import "math"

// Estados de la validación de luz.
const (
	EstadoLuzValida  = "VÁLIDO"
	EstadoLuzCritica = "CRÍTICO"
)

// Estados y recomendaciones de checkAutoportancia.
const (
	StatusSeguro    = "Seguro"
	StatusRechazado = "Rechazado"

	RecomendacionAdmisible = "Luz admisible."
	RecomendacionCritica   = "Reduzca la luz o use un panel de mayor espesor (ej: 150mm)."
)

// SpanCheck resultado de validar una luz contra la autoportancia del panel.
type SpanCheck struct {
	LuzM             float64
	AutoportanciaMax float64
	EsSeguro         bool
	Estado           string
}

// CheckSpan determina si el panel puede salvar la luz pedida. La igualdad
// exacta con la autoportancia máxima es admisible (borde inclusive).
func CheckSpan(autoportanciaMax, luzM float64) SpanCheck {
	seguro := luzM <= autoportanciaMax
	estado := EstadoLuzCritica
	if seguro {
		estado = EstadoLuzValida
	}
	return SpanCheck{
		LuzM:             luzM,
		AutoportanciaMax: autoportanciaMax,
		EsSeguro:         seguro,
		Estado:           estado,
	}
}

// Supports cantidad de apoyos estimada para el largo dado. Una autoportancia
// nula o negativa se trata como 1 m para no dividir por cero.
func Supports(lengthM, autoportanciaMax float64) int {
	den := autoportanciaMax
	if den <= 0 {
		den = 1
	}
	return int(math.Ceil(lengthM/den + 1))
}
