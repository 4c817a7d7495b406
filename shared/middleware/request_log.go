package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/teamboard/teamboard/shared/logger"
	"github.com/teamboard/teamboard/shared/middleware/metrics"
)

const RequestIdHeader = "X-Request-ID"

// RequestLogger tags every request with an id (taken from the client or generated),
// stores a request scoped logger in the context and logs the outcome.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestId := r.Header.Get(RequestIdHeader)
		if _, err := uuid.Parse(requestId); err != nil {
			requestId = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, requestId)

		log := logger.Log.With("request_id", requestId)
		r = r.WithContext(logger.WithContext(r.Context(), log))

		rec := metrics.NewStatusRecorder(w)
		next.ServeHTTP(rec, r)

		ip, _ := GetIP(r)
		log.Info("request",
			"method", r.Method,
			"path", metrics.RoutePattern(r),
			"status", rec.Status,
			"duration", time.Since(start),
			"ip", ip,
		)
	})
}
