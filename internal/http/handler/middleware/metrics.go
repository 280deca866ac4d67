package middleware

import (
	"net/http"
	"time"
)

type MetricsMiddleware struct {
	observer HTTPObserver
}

func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{
		observer: observer,
	}
}

// Instrument reports every request under its matched route pattern, so
// path parameters do not multiply label values.
func (m *MetricsMiddleware) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.observer.ObserveHTTP(r.Method, route, rec.status, time.Since(start))
	})
}
