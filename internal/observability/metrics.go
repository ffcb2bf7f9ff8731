// Package observability expone los contadores Prometheus del motor en un
// puerto propio, separado de la API.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CotizacionesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "panelin_cotizaciones_total",
			Help: "Total de cotizaciones calculadas",
		},
	)
	ValidacionesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "panelin_validaciones_total",
			Help: "Total de validaciones de autoportancia",
		},
	)
	AccesoriosFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "panelin_accesorios_fallback_total",
			Help: "Lookups de accesorios resueltos con precio de respaldo",
		},
	)
	ChatToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panelin_chat_tool_calls_total",
			Help: "Tool calls despachadas por la pasarela conversacional",
		},
		[]string{"tool"},
	)
)

// Start registra los contadores y sirve /metrics en el puerto indicado.
func Start(port string) {
	prometheus.MustRegister(
		CotizacionesTotal,
		ValidacionesTotal,
		AccesoriosFallbackTotal,
		ChatToolCallsTotal,
	)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
