// Package httpx contains the HTTP middlewares and helper handlers used by
// the ops server: request-scoped access logging, permissive CORS and a
// pprof mux.
package httpx

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ottocr/GEMS/pkg/logger"
)

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// ClientIP resolves the originating client address, preferring proxy
// headers over the raw connection address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// may list several hops; the first entry is the client
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// RequestIDHeader carries the caller-provided request ID, when present.
const RequestIDHeader = "X-Request-Id"

// WithLogger injects a request-scoped logger carrying a request ID into
// the context and writes a structured access log once the handler returns.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := logger.WithFields(r.Context(), zap.String("requestId", requestID))

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info(ctx, "access log",
			zap.Int("statusCode", rec.status),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("clientIp", ClientIP(r)),
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.String("userAgent", r.UserAgent()),
		)
	})
}

// WithCORS sets permissive CORS headers and short-circuits OPTIONS
// preflight requests.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
