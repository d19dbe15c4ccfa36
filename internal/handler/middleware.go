package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// adminHeader carries the shared admin secret on admin-gated requests.
const adminHeader = "X-Admin-Secret"

// AdminGate guards admin-only endpoints with the shared secret. When no
// secret is configured the gate is wide open; main logs a warning about that
// at startup.
type AdminGate struct {
	secret string
}

// NewAdminGate constructs an AdminGate.
func NewAdminGate(secret string) *AdminGate {
	return &AdminGate{secret: secret}
}

// Authorized reports whether the request carries the admin secret. Always
// true when no secret is configured.
func (g *AdminGate) Authorized(r *http.Request) bool {
	if g.secret == "" {
		return true
	}
	header := r.Header.Get(adminHeader)
	return subtle.ConstantTimeCompare([]byte(header), []byte(g.secret)) == 1
}

// Require is middleware that rejects unauthorized requests with 401.
func (g *AdminGate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.Authorized(r) {
			writeError(w, http.StatusUnauthorized, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AccessLog returns middleware that writes one structured log line per
// request with method, path, status, and duration.
func AccessLog(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			)
		})
	}
}
