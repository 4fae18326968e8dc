package svlocusset

// Option configures an SVLocusSet at construction time, following the
// functional-options pattern lvlath uses for GraphOption/BuilderOption:
// option constructors validate and panic on programmer error. Outside the
// options, GetRegionIntersect also panics when begin >= end, through
// interval.New.
type Option func(*SVLocusSet)

// WithHeader seeds the container's persistence header (§6's "header
// object"). The header is opaque to this package beyond being carried
// through Save/Load verbatim.
func WithHeader(header []byte) Option {
	return func(s *SVLocusSet) {
		s.header = append([]byte(nil), header...)
	}
}

// WithInitialCapacity pre-sizes the slab's backing storage to avoid
// reallocation for a known approximate input size. Panics on a negative
// capacity, mirroring builder.WithIDScheme's "panic on meaningless input"
// policy.
func WithInitialCapacity(n int) Option {
	if n < 0 {
		panic("svlocusset: WithInitialCapacity negative")
	}
	return func(s *SVLocusSet) {
		s.slab.Reserve(n)
	}
}
