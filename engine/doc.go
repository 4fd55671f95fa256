// Package engine implements the core Sparse Distributed Memory engine
// after Kanerva (1992).
//
// An Engine owns two fixed-size matrices: an immutable address matrix of
// M randomly generated hard locations (N bits each, packed into uint64
// words) and a mutable counter matrix of M x U signed counters. Writing
// distributes a memory vector into every location within Hamming
// distance H of the target address; reading aggregates the counters of
// the activated locations and thresholds the sums back into bits.
//
// The engine is synchronous and assumes sequential use by a single
// caller. Read is a pure query and is safe for concurrent readers; any
// exposure to concurrent writers must be serialized externally (see the
// root sdmgo package).
package engine
