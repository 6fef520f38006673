package middleware

import (
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// LogRequest logs every incoming request and tags it with a request id,
// reusing the one set by the proxy in front, if any.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.NewString()
				r.Header.Set(RequestIDHeader, requestID)
			}
			w.Header().Set(RequestIDHeader, requestID)

			log.WithField("request_id", requestID).Tracef(
				" ====> request [%s] path: [%s] [UA: %s]",
				r.Method, r.URL.Path, r.Header.Get("User-Agent"),
			)
			next.ServeHTTP(w, r)
		})
	}
}
