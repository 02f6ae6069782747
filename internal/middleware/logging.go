package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader в нём клиент получает id запроса для сверки с логами.
const RequestIDHeader = "X-Request-ID"

var logger *zap.SugaredLogger

// SetLogger задаёт логгер для мидлварей пакета.
func SetLogger(l *zap.SugaredLogger) {
	logger = l
}

// WithLogging пишет в лог каждый запрос: метод, uri, статус, размер ответа и длительность.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		if logger == nil {
			return
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logger.Infow("request",
			"request_id", reqID,
			"method", r.Method,
			"uri", r.RequestURI,
			"status", status,
			"size", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
