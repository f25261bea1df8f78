package router

import (
	"net/http"
	"time"

	"github.com/jbeshir/conduit-feed/internal/domain"
)

// requestLoggerMiddleware scopes the context logger to the request and logs its duration.
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := domain.LoggerFromContext(r.Context()).With(
			"method", r.Method,
			"path", r.URL.Path,
		)
		ctx := domain.ContextWithLogger(r.Context(), logger)

		next.ServeHTTP(w, r.WithContext(ctx))

		logger.DebugContext(ctx, "handled request", "duration", time.Since(start))
	})
}
