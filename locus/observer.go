package locus

import "github.com/katalvlaran/svlocus/interval"

// IndexNotifier is the subgraph's view of its owning container: the global
// spatial index. A Locus calls Notify{Insert,Erase} on every vertex
// creation, removal, and interval change so the index stays 1:1 with the
// set of live vertices (invariant I1).
//
// Implemented by the container (svlocusset.SVLocusSet); Locus never imports
// that package, avoiding an import cycle and keeping the dependency
// non-owning per §9 ("Avoid an owning cycle").
type IndexNotifier interface {
	NotifyInsert(addr Addr, iv interval.Interval)
	NotifyErase(addr Addr, iv interval.Interval)
}

// noopNotifier is used by free-floating Loci that have not yet been staged
// into a container (e.g. caller-built input subgraphs before Merge). Every
// call is a no-op; once the Locus is wired via SetObserver, the backlog of
// existing vertices is flushed into the real notifier.
type noopNotifier struct{}

func (noopNotifier) NotifyInsert(Addr, interval.Interval) {}
func (noopNotifier) NotifyErase(Addr, interval.Interval)  {}

// ObserverHandle is the small value a Locus carries as its non-owning
// back-reference to the container: the (locus-slot, notifier) pair it
// needs to keep the spatial index in sync. Per §9, the container owns the
// Locus; the Locus's handle never owns the container.
type ObserverHandle struct {
	Notifier  IndexNotifier
	LocusSlot int
}
