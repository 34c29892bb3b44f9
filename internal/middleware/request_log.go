package middleware

import (
	"net/http"
	"strconv"
	"time"

	"pet-wellness-web/internal/platform/logger"
	"pet-wellness-web/internal/platform/metrics"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog loguea cada request con el id que pone chi/middleware.RequestID
// y cuenta el status en Prometheus.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()

			fields := map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     status,
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
			}
			if status >= 500 {
				log.Error("request", fields)
				return
			}
			log.Debug("request", fields)
		})
	}
}
