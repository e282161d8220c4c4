package middlewares

import (
	"context"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/utils"
	"net/http"
)

// RequestID reuses the caller-supplied X-Request-ID or mints one, and
// echoes it on the response.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}
		w.Header().Set(constvars.HeaderXRequestID, requestID)

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
