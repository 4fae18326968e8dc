package svlocusset

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/katalvlaran/svlocus/locus"
)

// fileHeader is the first record of every serialized container: the
// caller-opaque header blob (§6, WithHeader).
type fileHeader struct {
	Header []byte
}

// locusRecord is one non-empty Locus's vertices, in slot order. Edge
// targets are stored with their LocusSlot left as whatever it was in the
// source container; Load ignores that value and rewrites it to the slot
// the record is assigned on the way back in, relying on §4.1's
// connectivity invariant (a Locus's edges never reference another
// Locus) rather than persisting a slot-translation table.
type locusRecord struct {
	Vertices []locus.Vertex
}

// Save writes the container's header followed by every non-empty Locus,
// in ascending slot order, to path as a sequential gob stream. Empty
// slots (recycled or never used) are never written — slot numbering is
// not part of the persisted format, only relative order is, since Load
// reassigns fresh slots 0..M-1 to whatever it reads (§4.6).
//
// encoding/gob is the one persistence dependency this package takes from
// the standard library rather than the example corpus: no third-party
// codec appears exercised by hand-written source anywhere in the
// retrieved pack (protobuf shows up only as an indirect dependency of
// cockroachdb/errors, never imported by name in example code), so there
// is no grounded ecosystem alternative to reach for here.
func (s *SVLocusSet) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return ioFailuref("save: create "+path, err)
	}
	defer f.Close()

	enc := gob.NewEncoder(f)
	if err := enc.Encode(fileHeader{Header: s.header}); err != nil {
		return ioFailuref("save: encode header", err)
	}

	for _, slot := range s.NonEmptyLoci() {
		l := s.GetLocus(slot)
		vs := l.Vertices()
		rec := locusRecord{Vertices: make([]locus.Vertex, len(vs))}
		for i, v := range vs {
			rec.Vertices[i] = *v
		}
		if err := enc.Encode(rec); err != nil {
			return ioFailuref("save: encode locus", err)
		}
	}

	if err := f.Sync(); err != nil {
		return ioFailuref("save: sync "+path, err)
	}

	return nil
}

// Load replaces s's entire contents with the container serialized at
// path: header, slab, and spatial index are all rebuilt from scratch.
// Each Locus is reassigned the next sequential slot as it is read, and
// every vertex's edge targets are rewritten to that slot (see
// locusRecord). A full invariant check (§4.7, with the overlap scan
// enabled) runs before Load returns successfully, so a truncated or
// hand-edited file is caught immediately rather than surfacing later as
// a mysterious Merge failure.
func (s *SVLocusSet) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return ioFailuref("load: open "+path, err)
	}
	defer f.Close()

	dec := gob.NewDecoder(f)
	var fh fileHeader
	if err := dec.Decode(&fh); err != nil {
		return ioFailuref("load: decode header", err)
	}

	fresh := New()
	fresh.header = append([]byte(nil), fh.Header...)

	for {
		var rec locusRecord
		err := dec.Decode(&rec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return ioFailuref("load: decode locus", err)
		}

		newSlot := fresh.LocusCount()
		l := locus.New()
		for _, v := range rec.Vertices {
			slot := l.AddVertex(v.Interval)
			nv := l.GetVertex(slot)
			nv.ObsCount = v.ObsCount
			nv.Edges = make(map[locus.Addr]locus.EdgePayload, len(v.Edges))
			for target, payload := range v.Edges {
				nv.Edges[locus.Addr{LocusSlot: newSlot, VertexSlot: target.VertexSlot}] = payload
			}
		}
		fresh.stageLocus(l)
	}

	if err := fresh.CheckState(true); err != nil {
		return err
	}

	*s = *fresh

	return nil
}
