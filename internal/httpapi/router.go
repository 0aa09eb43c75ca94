// Package httpapi is the optional HTTP façade around the HNSW core: a
// thin JSON surface for insert/search/stats.
package httpapi

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/documind/hnswindex/internal/observability"
)

// NewRouter creates and configures the HTTP router around handler.
func NewRouter(handler *Handler, logger zerolog.Logger) *mux.Router {
	r := mux.NewRouter()

	r.Use(observability.Recover(logger))
	r.Use(observability.Logging(logger))
	r.Use(corsMiddleware("GET", "POST", "OPTIONS"))

	r.HandleFunc("/vectors", handler.HandleInsert).Methods("POST", "OPTIONS")
	r.HandleFunc("/vectors/batch", handler.HandleInsertBatch).Methods("POST", "OPTIONS")
	r.HandleFunc("/vectors/search", handler.HandleSearch).Methods("POST", "OPTIONS")
	r.HandleFunc("/healthz", handler.HandleHealth).Methods("GET")
	r.HandleFunc("/stats", handler.HandleStats).Methods("GET")

	return r
}
