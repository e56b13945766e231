package rangers

// Compact collapses runs of consecutive equal elements to their first
// occurrence, like slices.Compact but streaming. It is not a global
// deduplication: an element may reappear after a different one in between.
func Compact[C Cursor[E], E comparable](r Ranger[C, E]) Ranger[C, E] {
	return CompactFunc(r, func(a, b E) bool { return a == b })
}

// CompactFunc is Compact with a caller-supplied equivalence.
//
// Each incoming element is compared against the last element SEEN, not the
// last element emitted. For a genuine equivalence relation the two coincide
// (on inequality the last seen and last emitted element are the same
// value), but with a non-transitive eq they differ, and last-seen is the
// behavior provided: a chain 1,2,3 under eq(a,b) = |a-b|<=1 collapses to 1.
//
// State across calls is the last-seen cursor plus a started flag, so an
// early stop resumes comparison where it left off.
func CompactFunc[C Cursor[E], E any](r Ranger[C, E], eq func(a, b E) bool) Ranger[C, E] {
	start := true
	var last C
	return func(dst func(C) bool) bool {
		if start {
			start = false
			cont := false
			// Prime with the first element only; the inner ranger is told
			// to stop so the comparison loop below owns the rest.
			if r(func(q C) bool {
				last = q
				cont = dst(q)
				return false
			}) {
				return true // empty source
			}
			if !cont {
				return false
			}
		}
		return r(func(q C) bool {
			if eq(last.Value(), q.Value()) {
				last = q
				return true
			}
			last = q
			return dst(q)
		})
	}
}
