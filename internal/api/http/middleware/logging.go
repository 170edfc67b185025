package middleware

import (
	"log"
	"net/http"
	"time"
)

// responseWriter обертка для ResponseWriter для логирования статуса ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging логирует все HTTP запросы с request id, статусом и временем выполнения
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := RequestIDFromContext(r.Context())

		log.Printf("[HTTP] [%s] %s %s from %s", reqID, r.Method, r.URL.Path, r.RemoteAddr)

		ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(ww, r)

		log.Printf("[HTTP] [%s] %s %s - %d - %v", reqID, r.Method, r.URL.Path, ww.statusCode, time.Since(start))
	})
}
