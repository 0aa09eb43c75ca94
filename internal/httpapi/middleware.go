package httpapi

import (
	"net/http"
	"strings"

	"github.com/documind/hnswindex/internal/observability"
)

// corsMiddleware adds permissive CORS headers: this is a data API with
// no session state, so no origin needs to be singled out. allowedMethods
// is joined into the Access-Control-Allow-Methods header, and the
// correlation id header observability.Logging sets on every response is
// exposed to browser clients so a frontend can surface it in a bug
// report.
func corsMiddleware(allowedMethods ...string) func(http.Handler) http.Handler {
	methods := strings.Join(allowedMethods, ", ")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Expose-Headers", observability.RequestIDHeader)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
