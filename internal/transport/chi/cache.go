package chi

import (
	"bytes"
	"net/http"

	"github.com/helix-bio/graphdex/internal/cache"
)

// cached serves the handler's response from the configured cache when the
// same path and query were rendered before. Only 200 responses are stored.
func (s *Server) cached(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cache == nil {
			next(w, r)
			return
		}

		key := cache.Key(r.URL.Path, r.URL.RawQuery)
		if body, ok := s.cache.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(body)
			return
		}

		tee := &teeWriter{ResponseWriter: w, status: http.StatusOK}
		next(tee, r)
		if tee.status == http.StatusOK {
			s.cache.Set(r.Context(), key, tee.body.Bytes())
		}
	}
}

// teeWriter copies the response body so it can be cached after the handler
// has written it out.
type teeWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (t *teeWriter) WriteHeader(status int) {
	t.status = status
	t.ResponseWriter.WriteHeader(status)
}

func (t *teeWriter) Write(p []byte) (int, error) {
	t.body.Write(p)
	return t.ResponseWriter.Write(p)
}
