package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/talx-hub/gopher-coins/internal/utils/logger"
)

// RequestLogger logs every request with its outcome and puts log into the
// request context.
func RequestLogger(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			reqLog := log.With(slog.String("request_id", middleware.GetReqID(r.Context())))

			start := time.Now()
			defer func() {
				status := ww.Status()
				requestAttrs := slog.Group("request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
				)
				responseAttrs := slog.Group("response",
					slog.Int("status", status),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("latency", time.Since(start)),
				)

				if status >= http.StatusInternalServerError {
					reqLog.LogAttrs(r.Context(), slog.LevelError, "server error",
						requestAttrs, responseAttrs)
				} else {
					reqLog.LogAttrs(r.Context(), slog.LevelInfo, "request completed",
						requestAttrs, responseAttrs)
				}
			}()

			ctx := logger.WithContext(r.Context(), reqLog)
			next.ServeHTTP(ww, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
