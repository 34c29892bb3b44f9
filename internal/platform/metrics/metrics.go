// Package metrics concentra las métricas Prometheus del proceso.
// Se registran en el registry por defecto al importar el paquete (promauto).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "petwellness"

// GuardDecisionsTotal cuenta decisiones del guard de navegación.
// Labels: route (ruta pedida), outcome ("allow" o la ruta destino del redirect).
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Navigation guard decisions by requested route and outcome.",
	},
	[]string{"route", "outcome"},
)

// BackendRequestDuration mide las llamadas al backend REST.
// Labels: method, status ("2xx", "4xx", "5xx" o "network_error").
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of calls to the REST backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "status"},
)

// ControllerOpsTotal cuenta operaciones del controller de onboarding por resultado.
var ControllerOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "onboarding_operations_total",
		Help:      "Auth/onboarding controller operations by result.",
	},
	[]string{"op", "result"},
)

// HTTPRequestsTotal cuenta requests servidos por este proceso.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by method and status code.",
	},
	[]string{"method", "code"},
)

// StatusClass reduce un status HTTP a su clase ("2xx", "4xx"...).
func StatusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	case code >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
