// Package config loads the façade's runtime settings from flags and
// environment variables, flag taking priority over environment taking
// priority over the documented default.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/documind/hnswindex/internal/hnsw"
)

// Settings is everything cmd/server needs to wire an Index and an HTTP
// server around it.
type Settings struct {
	Port     int
	HNSW     hnsw.Config
	LogLevel string
}

const (
	defaultPort           = 8001
	defaultDimensions     = 384
	defaultCapacity       = 1_000_000
	defaultM              = 16
	defaultEfConstruction = 200
	defaultStorage        = "contiguous"
	defaultShrink         = "heuristic"
	defaultLogLevel       = "info"
)

// Load parses args (typically os.Args[1:]) and the process environment
// into Settings. Flags win over environment variables, which win over
// the defaults above.
func Load(args []string) (Settings, error) {
	fs := flag.NewFlagSet("vector-index-server", flag.ContinueOnError)

	port := fs.Int("port", envInt("VECTOR_SERVICE_PORT", defaultPort), "port to listen on")
	dimensions := fs.Int("dimensions", envInt("VECTOR_SERVICE_DIMENSIONS", defaultDimensions), "vector dimensionality")
	capacity := fs.Int("capacity", envInt("VECTOR_SERVICE_CAPACITY", defaultCapacity), "maximum number of vectors the index can hold")
	m := fs.Int("m", envInt("VECTOR_SERVICE_M", defaultM), "maximum neighbors per node per upper layer")
	efConstruction := fs.Int("ef-construction", envInt("VECTOR_SERVICE_EF_CONSTRUCTION", defaultEfConstruction), "beam width during construction")
	storage := fs.String("storage", envString("VECTOR_SERVICE_STORAGE", defaultStorage), "vector store backend: contiguous|per-slot")
	shrink := fs.String("shrink", envString("VECTOR_SERVICE_SHRINK", defaultShrink), "neighbor shrink strategy: heuristic|greedy")
	seed := fs.Int64("seed", envInt64("VECTOR_SERVICE_SEED", 0), "level generator RNG seed")
	logLevel := fs.String("log-level", envString("VECTOR_SERVICE_LOG_LEVEL", defaultLogLevel), "zerolog level: debug|info|warn|error")

	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	backend, err := hnsw.ParseStorageBackend(*storage)
	if err != nil {
		return Settings{}, err
	}
	shrinkStrategy, err := hnsw.ParseShrinkStrategy(*shrink)
	if err != nil {
		return Settings{}, err
	}

	cfg := hnsw.Config{
		Dimensions:     *dimensions,
		Capacity:       *capacity,
		M:              *m,
		EfConstruction: *efConstruction,
		Storage:        backend,
		Shrink:         shrinkStrategy,
		Seed:           *seed,
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}

	return Settings{
		Port:     *port,
		HNSW:     cfg,
		LogLevel: *logLevel,
	}, nil
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
