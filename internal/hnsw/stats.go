package hnsw

// Stats reports the index's configuration and current size, exposed via
// the optional façade stats endpoint.
type Stats struct {
	M                      int
	EfConstruction         int
	Dimensions             int
	NodeCount              int
	MaxLayer               int
	EntryPoint             int64 // -1 before the first insert
	CumulativeInsertTimeMS float64
}

// Stats returns a snapshot of the index's size and configuration.
func (idx *Index) Stats() Stats {
	entryPoint := int64(-1)
	if idx.hasEntryPoint {
		entryPoint = int64(idx.entryPoint)
	}
	return Stats{
		M:                      idx.cfg.M,
		EfConstruction:         idx.cfg.EfConstruction,
		Dimensions:             idx.cfg.Dimensions,
		NodeCount:              int(idx.nextID),
		MaxLayer:               idx.maxLayer,
		EntryPoint:             entryPoint,
		CumulativeInsertTimeMS: float64(idx.cumulativeInsertTime.Microseconds()) / 1000.0,
	}
}
