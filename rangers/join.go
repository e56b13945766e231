package rangers

// Join flattens a ranger whose elements are themselves rangers into a single
// ranger over the leaf elements. The produced cursor type is the
// sub-rangers' cursor type; downstream combinators see one flat stream.
//
// State across calls is the sub-ranger currently in progress, if any: when
// the downstream sink stops mid-sub-ranger, that sub-ranger is parked and
// drained first on the next call, before the outer traversal resumes.
func Join[C Cursor[Ranger[SC, E]], SC Cursor[E], E any](r Ranger[C, Ranger[SC, E]]) Ranger[SC, E] {
	var pending Ranger[SC, E]
	return func(dst func(SC) bool) bool {
		if pending != nil {
			if !pending(dst) {
				return false
			}
			pending = nil
		}
		return r(func(c C) bool {
			sub := c.Value()
			if !sub(dst) {
				pending = sub
				return false
			}
			return true
		})
	}
}

// Flatten flattens a ranger of slices into a ranger over their elements:
// each produced slice is wrapped with All before joining.
func Flatten[C Cursor[[]E], E any](r Ranger[C, []E]) Ranger[SliceCursor[E], E] {
	return Join(Map(r, func(xs []E) Ranger[SliceCursor[E], E] {
		return All(xs)
	}))
}
