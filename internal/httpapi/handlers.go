package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/documind/hnswindex/internal/bruteforce"
	"github.com/documind/hnswindex/internal/hnsw"
	"github.com/documind/hnswindex/internal/observability"
	"github.com/documind/hnswindex/pkg/vector"
)

// Handler holds the dependencies for the HTTP surface. The HNSW core
// itself has no locks; Handler supplies the single sync.RWMutex that
// lets a read-mostly server share it safely. Inserts and HNSW searches
// take the write lock (an HNSW search reuses the index's scratch heaps
// and visited set, so two must not overlap); brute-force searches,
// health and stats take the read lock.
type Handler struct {
	mu         sync.RWMutex
	index      *hnsw.Index
	bruteForce *bruteforce.Index
	dimensions int
}

// NewHandler creates a Handler wrapping a freshly constructed HNSW index
// and its brute-force oracle.
func NewHandler(cfg hnsw.Config) *Handler {
	return &Handler{
		index:      hnsw.New(cfg),
		bruteForce: bruteforce.New(cfg.Dimensions),
		dimensions: cfg.Dimensions,
	}
}

// withLock runs fn holding the write lock. The unlock is deferred so a
// panic inside fn (an Index at capacity, say) can't leave the mutex
// held across requests; observability.Recover turns the panic itself
// into a 500 for the request that triggered it.
func (h *Handler) withLock(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn()
}

// withRLock is withLock's read-only counterpart.
func (h *Handler) withRLock(fn func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	fn()
}

func (h *Handler) HandleInsert(w http.ResponseWriter, r *http.Request) {
	var req vector.InsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if len(req.Embedding) != h.dimensions {
		writeError(w, r, http.StatusBadRequest, "embedding dimensions mismatch")
		return
	}

	var id uint32
	h.withLock(func() {
		id = h.index.Insert(req.Embedding)
		h.bruteForce.Insert(id, req.Embedding)
	})

	writeJSON(w, http.StatusOK, vector.InsertResponse{ID: id})
}

func (h *Handler) HandleInsertBatch(w http.ResponseWriter, r *http.Request) {
	var req vector.InsertBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	for _, emb := range req.Embeddings {
		if len(emb) != h.dimensions {
			writeError(w, r, http.StatusBadRequest, "embedding dimensions mismatch")
			return
		}
	}

	ids := make([]uint32, 0, len(req.Embeddings))
	h.withLock(func() {
		for _, emb := range req.Embeddings {
			id := h.index.Insert(emb)
			h.bruteForce.Insert(id, emb)
			ids = append(ids, id)
		}
	})

	writeJSON(w, http.StatusOK, vector.InsertBatchResponse{IDs: ids})
}

func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req vector.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if len(req.Embedding) != h.dimensions {
		writeError(w, r, http.StatusBadRequest, "embedding dimensions mismatch")
		return
	}
	if req.K <= 0 {
		req.K = 10
	}
	if req.EfSearch <= 0 {
		req.EfSearch = 100
	}
	if req.Algorithm == "" {
		req.Algorithm = "hnsw"
	}

	start := time.Now()
	var ids []uint32
	var unknownAlgorithm bool

	run := h.withRLock
	if req.Algorithm == "hnsw" {
		run = h.withLock
	}
	run(func() {
		switch req.Algorithm {
		case "bruteforce":
			ids = h.bruteForce.Search(req.Embedding, req.K)
		case "bruteforce_concurrent":
			ids = h.bruteForce.SearchConcurrent(req.Embedding, req.K, 4)
		case "hnsw":
			ids = h.index.Search(req.Embedding, req.K, req.EfSearch)
		default:
			unknownAlgorithm = true
		}
	})
	if unknownAlgorithm {
		writeError(w, r, http.StatusBadRequest, "unknown algorithm: "+req.Algorithm)
		return
	}

	writeJSON(w, http.StatusOK, vector.SearchResponse{
		IDs:       ids,
		LatencyMS: float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	var count int
	h.withRLock(func() {
		count = h.index.Stats().NodeCount
	})

	writeJSON(w, http.StatusOK, vector.HealthResponse{
		Status:      "ok",
		VectorCount: count,
	})
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	var s hnsw.Stats
	h.withRLock(func() {
		s = h.index.Stats()
	})

	writeJSON(w, http.StatusOK, vector.StatsResponse{
		M:                      s.M,
		EfConstruction:         s.EfConstruction,
		Dimensions:             s.Dimensions,
		NodeCount:              s.NodeCount,
		MaxLayer:               s.MaxLayer,
		EntryPoint:             s.EntryPoint,
		CumulativeInsertTimeMS: s.CumulativeInsertTimeMS,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, vector.ErrorResponse{
		Error:     message,
		RequestID: observability.RequestID(r.Context()),
	})
}
