// File: stats.go
// Role: per-relation-type edge counters.
package graph

import "github.com/grixdb/grix/core"

// Statistics tracks one monotone edge counter per relation type. Counters
// are bumped as a side effect of every successful edge connection and are
// never decremented here — deletion accounting belongs to the compaction
// pass, outside this core.
//
// The zero value is ready to use.
type Statistics struct {
	edgeCount []uint64 // indexed by RelationID, grown on demand
}

// IncEdgeCount adds delta to relation r's edge counter, growing the
// counter table if r is new.
// Complexity: amortized O(1)
func (s *Statistics) IncEdgeCount(r core.RelationID, delta uint64) {
	for len(s.edgeCount) <= int(r) {
		s.edgeCount = append(s.edgeCount, 0)
	}
	s.edgeCount[r] += delta
}

// EdgeCount returns relation r's counter; relations never seen count zero.
// Complexity: O(1)
func (s *Statistics) EdgeCount(r core.RelationID) uint64 {
	if int(r) >= len(s.edgeCount) {
		return 0
	}
	return s.edgeCount[r]
}
