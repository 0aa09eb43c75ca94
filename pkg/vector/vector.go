// Package vector defines the wire-level request and response types of the
// HTTP façade around the HNSW core.
package vector

// InsertRequest is the request body for inserting a single vector.
type InsertRequest struct {
	Embedding []float32 `json:"embedding"`
}

// InsertResponse is the response body for a single insert.
type InsertResponse struct {
	ID uint32 `json:"id"`
}

// InsertBatchRequest is the request body for batch vector insertion.
type InsertBatchRequest struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// InsertBatchResponse is the response body for batch insert operations.
type InsertBatchResponse struct {
	IDs []uint32 `json:"ids"`
}

// SearchRequest is the request body for a nearest-neighbor query.
type SearchRequest struct {
	Embedding []float32 `json:"embedding"`
	K         int       `json:"k"`
	EfSearch  int       `json:"ef_search"`
	Algorithm string    `json:"algorithm"` // "hnsw" (default), "bruteforce" or "bruteforce_concurrent"
}

// SearchResponse is the response body for a search request.
type SearchResponse struct {
	IDs       []uint32 `json:"ids"`
	LatencyMS float64  `json:"latency_ms"`
}

// HealthResponse is the response body for the liveness endpoint.
type HealthResponse struct {
	Status      string `json:"status"`
	VectorCount int    `json:"vector_count"`
}

// StatsResponse mirrors hnsw.Stats for the HTTP surface.
type StatsResponse struct {
	M                      int     `json:"m"`
	EfConstruction         int     `json:"ef_construction"`
	Dimensions             int     `json:"dimensions"`
	NodeCount              int     `json:"node_count"`
	MaxLayer               int     `json:"max_layer"`
	EntryPoint             int64   `json:"entry_point"`
	CumulativeInsertTimeMS float64 `json:"cumulative_insert_time_ms"`
}

// ErrorResponse is the body returned for any 4xx façade response. The 500
// written by observability.Recover is a plain-text body, not this type.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
