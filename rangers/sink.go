package rangers

// Collect drives r to exhaustion and materializes the elements into a slice.
func Collect[C Cursor[E], E any](r Ranger[C, E]) []E {
	var out []E
	r(func(c C) bool {
		out = append(out, c.Value())
		return true
	})
	return out
}

// Each drives r to exhaustion, invoking action on every element.
func Each[C Cursor[E], E any](r Ranger[C, E], action func(E)) {
	r(func(c C) bool {
		action(c.Value())
		return true
	})
}

// Count drives r to exhaustion and returns the number of elements produced.
func Count[C Cursor[E], E any](r Ranger[C, E]) int {
	n := 0
	r(func(C) bool {
		n++
		return true
	})
	return n
}

// First returns the first element of r, stopping the traversal immediately
// after it. The ranger remains resumable: a later drive continues with the
// second element.
func First[C Cursor[E], E any](r Ranger[C, E]) (E, bool) {
	var v E
	found := false
	r(func(c C) bool {
		v = c.Value()
		found = true
		return false
	})
	return v, found
}

// Reduce aggregates the elements of r using the reducer function, starting
// from the initial value.
func Reduce[C Cursor[E], E, R any](r Ranger[C, E], initial R, reducer func(R, E) R) R {
	acc := initial
	r(func(c C) bool {
		acc = reducer(acc, c.Value())
		return true
	})
	return acc
}

// Any reports whether any element of r satisfies the predicate,
// short-circuiting on the first match.
func Any[C Cursor[E], E any](r Ranger[C, E], predicate func(E) bool) bool {
	found := false
	r(func(c C) bool {
		if predicate(c.Value()) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Every reports whether every element of r satisfies the predicate,
// short-circuiting on the first failure.
func Every[C Cursor[E], E any](r Ranger[C, E], predicate func(E) bool) bool {
	ok := true
	r(func(c C) bool {
		if !predicate(c.Value()) {
			ok = false
			return false
		}
		return true
	})
	return ok
}
