package rangers

// Filter yields only the cursors whose value satisfies the predicate,
// preserving order. Suppressed elements never reach the downstream sink;
// the inner ranger is simply told to continue. Filter keeps no state of its
// own, so stop/resume behavior is inherited verbatim from r.
func Filter[C Cursor[E], E any](r Ranger[C, E], predicate func(E) bool) Ranger[C, E] {
	return func(dst func(C) bool) bool {
		return r(func(c C) bool {
			if predicate(c.Value()) {
				return dst(c)
			}
			return true
		})
	}
}

// Peek invokes action on each element as it flows by, forwarding everything
// unchanged. Useful for debugging a fused chain. Note that Peek dereferences
// the cursor, forcing any deferred Map computation at traversal time.
func Peek[C Cursor[E], E any](r Ranger[C, E], action func(E)) Ranger[C, E] {
	return func(dst func(C) bool) bool {
		return r(func(c C) bool {
			action(c.Value())
			return dst(c)
		})
	}
}
