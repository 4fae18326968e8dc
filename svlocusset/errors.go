package svlocusset

import "github.com/cockroachdb/errors"

// Sentinel marks for the three error kinds of §7. Every concrete error this
// package returns is produced with errors.Newf/errors.Wrapf and then marked
// with one of these via errors.Mark, so callers can branch with errors.Is
// even though the message carries per-call diagnostic detail (offending
// addresses, intervals, source identifiers) that a plain sentinel can't.
var (
	// ErrInvariantViolation marks every structural-assertion failure: a
	// missing or extra spatial-index entry, overlapping same-tid
	// intervals, an empty intersection where the merge engine requires a
	// non-empty one, or a post-unification anchor that can't be found.
	// Always raised; the core never attempts to recover from it.
	ErrInvariantViolation = errors.New("svlocusset: invariant violation")

	// ErrIoFailure marks a Save/Load failure reaching the filesystem or
	// the underlying encoding.
	ErrIoFailure = errors.New("svlocusset: io failure")

	// ErrMergeFailure marks a nested merge(locus) failure surfaced while
	// folding another container's loci in via Merge(*SVLocusSet).
	ErrMergeFailure = errors.New("svlocusset: merge failure")
)

func invariantViolationf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvariantViolation)
}

func ioFailuref(op string, err error) error {
	return errors.Mark(errors.Wrapf(err, "svlocusset: %s", op), ErrIoFailure)
}

func mergeFailuref(source string, slot int, err error) error {
	return errors.Mark(
		errors.Wrapf(err, "svlocusset: merge source %q locus-slot %d", source, slot),
		ErrMergeFailure,
	)
}
