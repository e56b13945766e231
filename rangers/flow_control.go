package rangers

// Take bounds the total number of elements delivered downstream at n,
// counted across resumed calls. Reaching the cap forces the inner ranger to
// stop early, but Take reports that as exhaustion (true): the capped
// sequence really is over. A stop requested by the downstream sink before
// the cap is reached propagates as false and is resumable as usual.
func Take[C Cursor[E], E any](r Ranger[C, E], n int) Ranger[C, E] {
	return func(dst func(C) bool) bool {
		if n <= 0 {
			return true
		}
		ok := r(func(c C) bool {
			n--
			return dst(c) && n != 0
		})
		return ok || n == 0
	}
}

// Skip drops the first n elements, then forwards the rest. The remaining
// drop count persists across resumed calls.
func Skip[C Cursor[E], E any](r Ranger[C, E], n int) Ranger[C, E] {
	return func(dst func(C) bool) bool {
		return r(func(c C) bool {
			if n > 0 {
				n--
				return true
			}
			return dst(c)
		})
	}
}

// TakeWhile forwards elements as long as the predicate holds and ends the
// sequence at the first failing element. Once tripped, the ranger reports
// exhaustion forever; the failing element is not delivered.
func TakeWhile[C Cursor[E], E any](r Ranger[C, E], predicate func(E) bool) Ranger[C, E] {
	done := false
	return func(dst func(C) bool) bool {
		if done {
			return true
		}
		ok := r(func(c C) bool {
			if !predicate(c.Value()) {
				done = true
				return false
			}
			return dst(c)
		})
		return ok || done
	}
}

// DropWhile suppresses the leading run of elements satisfying the predicate,
// then forwards everything from the first failing element on. The dropping
// flag persists across resumed calls.
func DropWhile[C Cursor[E], E any](r Ranger[C, E], predicate func(E) bool) Ranger[C, E] {
	dropping := true
	return func(dst func(C) bool) bool {
		return r(func(c C) bool {
			if dropping {
				if predicate(c.Value()) {
					return true
				}
				dropping = false
			}
			return dst(c)
		})
	}
}
