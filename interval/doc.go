// Package interval implements arithmetic over half-open genomic intervals.
//
// An Interval is a triple (Tid, Begin, End) with Begin < End. Tid identifies
// a chromosome (or other reference sequence); coordinates are only ever
// compared within the same Tid. Two intervals Intersect iff they share a Tid
// and their [Begin, End) ranges overlap; one interval IsSupersetOf another
// iff the Tid matches and the first's range contains the second's.
//
// This package has no dependencies and no mutable state: every function is a
// pure value transformation, mirroring how lvlath/core keeps its Vertex/Edge
// value types free of behavior beyond simple field access.
package interval
