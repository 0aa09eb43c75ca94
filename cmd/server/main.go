// Command server runs an HTTP façade around an in-memory HNSW index: a
// high-performance approximate nearest neighbor search service.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/documind/hnswindex/internal/config"
	"github.com/documind/hnswindex/internal/httpapi"
	"github.com/documind/hnswindex/internal/observability"
)

func main() {
	settings, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(settings.LogLevel)

	handler := httpapi.NewHandler(settings.HNSW)
	router := httpapi.NewRouter(handler, logger)

	logger.Info().
		Int("port", settings.Port).
		Int("dimensions", settings.HNSW.Dimensions).
		Int("capacity", settings.HNSW.Capacity).
		Int("m", settings.HNSW.M).
		Int("ef_construction", settings.HNSW.EfConstruction).
		Str("storage", settings.HNSW.Storage.String()).
		Str("shrink", settings.HNSW.Shrink.String()).
		Msg("starting vector index server")

	addr := fmt.Sprintf(":%d", settings.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
