package httpinterface

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestID tags every request with a random id, returned in the
// response headers, and logs its outcome. Bodies are never logged since they
// may carry seed words.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.New().String()
		w.Header().Set(headerRequestID, id)

		rec := &statusRecorder{w, http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, req)

		log.WithFields(log.Fields{
			"id":       id,
			"method":   req.Method,
			"path":     req.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("http: request served")
	})
}
