package sdmgo

// UsageStats reports how much of the hard-location substrate has been
// touched by writes since construction or the last EraseMemory.
type UsageStats struct {
	// NumLocations is the total number of hard locations (M).
	NumLocations int
	// TouchedLocations is the number of locations activated by at
	// least one write.
	TouchedLocations int
	// Utilization is TouchedLocations / NumLocations in [0, 1].
	Utilization float64
	// Writes is the current write count (T).
	Writes int
}

// UsageStats returns a snapshot of location usage. The second return
// value is false when usage tracking was not enabled at construction
// (see WithUsageTracking).
func (s *SDM) UsageStats() (UsageStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.usage == nil {
		return UsageStats{}, false
	}

	touched := int(s.usage.GetCardinality())
	m := s.engine.NumLocations()

	return UsageStats{
		NumLocations:     m,
		TouchedLocations: touched,
		Utilization:      float64(touched) / float64(m),
		Writes:           s.engine.MemoryCount(),
	}, true
}
